package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUpdateCmd создаёт CLI-команду обновления контакта.
//
// Сервер применяет merge-семантику: не переданные (пустые) поля
// сохраняют прежние значения, клиенту не нужно пересылать всё.
// Чужой или несуществующий контакт — ошибка "not found".
//
// Пример использования:
//
//	contactcli update --id 42 --phone 9000000000
func NewUpdateCmd(app *App) *cobra.Command {
	var contactID int64
	var firstName, lastName, phone, email string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Обновить контакт (пустые поля сохраняют прежние значения)",
		Long: `Обновляет поля контакта. Передавайте только то, что меняется.

Пример:
  contactcli update --id 42 --phone 9000000000
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.requireSession()
			if err != nil {
				return err
			}

			if firstName == "" && lastName == "" && phone == "" && email == "" {
				return fmt.Errorf("nothing to update: pass at least one field flag")
			}
			if err := validateContactFields(phone, email); err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			if err := c.UpdateContact(contactID, s.UserID, firstName, lastName, phone, email); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated contact %d\n", contactID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&contactID, "id", 0, "contact id")
	cmd.Flags().StringVar(&firstName, "first-name", "", "new first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "new last name")
	cmd.Flags().StringVar(&phone, "phone", "", "new phone")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.MarkFlagRequired("id")

	return cmd
}
