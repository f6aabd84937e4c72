package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-contact-manager/internal/agent/session"
)

// NewLoginCmd создаёт CLI-команду входа пользователя.
//
// Команда проверяет учётные данные на сервере и сохраняет локальную сессию
// (userId, имя, фамилия) со сроком жизни 20 минут. Все команды работы с
// контактами требуют живую сессию.
//
// Пароль читается скрытым вводом из терминала, либо из STDIN
// при флаге --password-stdin.
//
// Пример использования:
//
//	contactcli login --login ivan
func NewLoginCmd(app *App) *cobra.Command {
	var login string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Вход пользователя (сохраняет сессию на 20 минут)",
		Long: `Вход пользователя.

Пример:
  contactcli login --login ivan
  echo "StrongPass123" | contactcli login --login ivan --password-stdin
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := ReadPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			res, err := c.Login(login, password)
			if err != nil {
				return err
			}

			app.Session = session.New(res.UserID, res.FirstName, res.LastName)
			if err := SaveSession(app.SessionPath, app.Session); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "welcome, %s %s (session saved)\n", res.FirstName, res.LastName)
			return nil
		},
	}

	cmd.Flags().StringVar(&login, "login", "", "login")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read password from stdin")
	cmd.MarkFlagRequired("login")

	return cmd
}

// NewLogoutCmd создаёт CLI-команду удаления локальной сессии.
//
// Отсутствие сессии не считается ошибкой — logout идемпотентен.
func NewLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "logout",
		Short:        "Удалить локальную сессию",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ClearSession(app.SessionPath); err != nil {
				return err
			}
			app.Session = nil
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}
