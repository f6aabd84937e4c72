package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewDeleteCmd создаёт CLI-команду удаления контакта.
//
// Без флага --yes команда спрашивает подтверждение (y/N) — аналог
// confirm-диалога. Повторное удаление того же id вернёт "not found".
//
// Пример использования:
//
//	contactcli delete --id 42 --yes
func NewDeleteCmd(app *App) *cobra.Command {
	var contactID int64
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Удалить контакт",
		Long: `Удаляет контакт по id.

Пример:
  contactcli delete --id 42
  contactcli delete --id 42 --yes   (без подтверждения)
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.requireSession()
			if err != nil {
				return err
			}

			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "delete contact %d? [y/N]: ", contactID)
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				answer := strings.ToLower(strings.TrimSpace(line))
				if answer != "y" && answer != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
					return nil
				}
			}

			c := NewAPIClient(app.ServerURL)
			if err := c.DeleteContact(contactID, s.UserID); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted contact %d\n", contactID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&contactID, "id", 0, "contact id")
	cmd.Flags().BoolVar(&yes, "yes", false, "do not ask for confirmation")
	cmd.MarkFlagRequired("id")

	return cmd
}
