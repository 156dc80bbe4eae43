package menu

import "context"

// Execute runs the action bound to key.
func Execute(ctx context.Context, key string, d *Deps) error {
	a, ok := actions[key]
	if !ok {
		d.IO.Println("Неизвестная команда:", key)
		return nil
	}
	return a(ctx, d)
}
