package level

import "fmt"

// Props holds an object's custom properties as decoded JSON. The typed
// getters treat a missing or mistyped required key as a configuration
// error; the Or variants supply defaults for optional keys.
type Props map[string]any

func (p Props) Float(key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("level: missing required property %q", key)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("level: property %q is %T, want number", key, v)
	}
	return f, nil
}

func (p Props) Int(key string) (int, error) {
	f, err := p.Float(key)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func (p Props) Bool(key string) (bool, error) {
	v, ok := p[key]
	if !ok {
		return false, fmt.Errorf("level: missing required property %q", key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("level: property %q is %T, want bool", key, v)
	}
	return b, nil
}

func (p Props) String(key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", fmt.Errorf("level: missing required property %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("level: property %q is %T, want string", key, v)
	}
	return s, nil
}

func (p Props) FloatOr(key string, def float64) float64 {
	if f, err := p.Float(key); err == nil {
		return f
	}
	return def
}

func (p Props) IntOr(key string, def int) int {
	if i, err := p.Int(key); err == nil {
		return i
	}
	return def
}

func (p Props) BoolOr(key string, def bool) bool {
	if b, err := p.Bool(key); err == nil {
		return b
	}
	return def
}

func (p Props) StringOr(key, def string) string {
	if s, err := p.String(key); err == nil {
		return s
	}
	return def
}
