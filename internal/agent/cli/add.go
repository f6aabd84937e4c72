package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAddCmd создаёт CLI-команду добавления контакта.
//
// Имя и фамилия обязательны, телефон и email опциональны.
// Дедупликации на сервере нет: повторный add с теми же полями
// создаёт вторую запись.
//
// Пример использования:
//
//	contactcli add --first-name Anna --last-name Ivanova --phone 9001112233
func NewAddCmd(app *App) *cobra.Command {
	var firstName, lastName, phone, email string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Добавить контакт",
		Long: `Добавляет контакт текущего пользователя.

Пример:
  contactcli add --first-name Anna --last-name Ivanova --email anna@example.com
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.requireSession()
			if err != nil {
				return err
			}

			if err := validateContactFields(phone, email); err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			id, err := c.AddContact(s.UserID, firstName, lastName, phone, email)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added contact %d: %s %s\n", id, firstName, lastName)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "contact first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "contact last name")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	cmd.MarkFlagRequired("first-name")
	cmd.MarkFlagRequired("last-name")

	return cmd
}
