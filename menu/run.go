package menu

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
)

var errExit = errors.New("exit")

// Run shows m until the user exits or the input ends. Failed actions are
// reported and the loop continues.
func Run(ctx context.Context, m Menu, d *Deps) error {
	cmds := BuildCommands(m, d)
	err := level(ctx, m.Title, m.Items, cmds, d.IO)
	if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func level(ctx context.Context, title string, items []Item, cmds map[string]Command, c *Console) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		Draw(c, title, items)
		choice, err := c.ReadLine("Ваш выбор: ")
		if err != nil {
			return err
		}
		idx, err := strconv.Atoi(strings.TrimSpace(choice))
		if err != nil || idx < 1 || idx > len(items) {
			c.Println("Некорректный ввод. Пожалуйста, выберите действие из меню.")
			continue
		}

		item := items[idx-1]
		switch {
		case len(item.Items) > 0:
			if err := level(ctx, item.Title, item.Items, cmds, c); err != nil {
				return err
			}
		case item.Key == keyBack:
			return nil
		case item.Key == keyExit:
			c.Println("Выход из приложения.")
			return errExit
		default:
			cmd, ok := cmds[item.Key]
			if !ok {
				c.Println("Неизвестная команда:", item.Key)
				continue
			}
			if err := cmd.Run(ctx); err != nil {
				if errors.Is(err, io.EOF) {
					return err
				}
				c.Println("Ошибка:", err)
			}
		}
	}
}
