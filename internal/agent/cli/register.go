package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-contact-manager/internal/agent/session"
)

// NewRegisterCmd создаёт CLI-команду регистрации нового пользователя.
//
// Команда регистрирует пользователя на сервере контактов и сразу сохраняет
// локальную сессию (как после логина) — повторный вход не нужен.
//
// Пароль читается скрытым вводом из терминала, либо из STDIN
// при флаге --password-stdin.
//
// Пример использования:
//
//	contactcli register --first-name Ivan --last-name Petrov --login ivan
func NewRegisterCmd(app *App) *cobra.Command {
	var firstName, lastName, login string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя.

Пример:
  contactcli register --first-name Ivan --last-name Petrov --login ivan
  echo "StrongPass123" | contactcli register --first-name Ivan --last-name Petrov --login ivan --password-stdin
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := ReadPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			res, err := c.Register(firstName, lastName, login, password)
			if err != nil {
				return err
			}

			// регистрация сразу логинит
			app.Session = session.New(res.UserID, res.FirstName, res.LastName)
			if err := SaveSession(app.SessionPath, app.Session); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registered: %s %s (userId=%d), session saved\n",
				res.FirstName, res.LastName, res.UserID)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "user first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "user last name")
	cmd.Flags().StringVar(&login, "login", "", "unique login")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read password from stdin")
	cmd.MarkFlagRequired("first-name")
	cmd.MarkFlagRequired("last-name")
	cmd.MarkFlagRequired("login")

	return cmd
}
