package levels

import (
	"os"

	"embed"

	"github.com/milk9111/chase/level"
)

//go:embed *.json
var LevelsFS embed.FS

// Load reads a level by name, preferring an on-disk copy under levels/
// so maps can be edited without rebuilding.
func Load(name string) (*level.Level, error) {
	if _, err := os.Stat("levels/" + name); err == nil {
		return level.Load("levels/" + name)
	}
	return level.LoadFromFS(LevelsFS, name)
}
