package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-contact-manager/internal/agent/api"
	"github.com/IvanChernomyrdin/go-contact-manager/internal/agent/feed"
)

// NewListCmd создаёт CLI-команду ленты контактов.
//
// Лента подгружается с сервера постранично и дедуплицируется; клиентский
// фильтр (--filter) и свёрнутый показ первых шести записей работают поверх
// уже накопленного и не ходят в сеть.
//
// В интерактивном режиме (--interactive) лента управляется командами
// с клавиатуры: подгрузка следующей страницы, серверный поиск, клиентский
// фильтр, показать ещё/меньше, добавление и удаление на месте.
//
// Примеры использования:
//
//	contactcli list
//	contactcli list --search an --pages 2
//	contactcli list --filter anna --all
//	contactcli list --interactive
func NewListCmd(app *App) *cobra.Command {
	var search, filter string
	var pages int
	var all, interactive bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Лента контактов (подгрузка, дедупликация, фильтр)",
		Long: `Лента контактов.

--search уходит на сервер (ILIKE по имени/телефону/email),
--filter работает локально по уже подгруженному.

Интерактивные команды (--interactive):
  n             подгрузить следующую страницу
  s <текст>     серверный поиск заново (s без текста — без фильтра)
  f <текст>     клиентский фильтр (f без текста — сбросить)
  m             показать ещё / показать меньше
  a <имя> <фамилия> [телефон] [email]   добавить контакт
  d <id>        удалить контакт
  q             выход
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.requireSession()
			if err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			f := feed.New(c, s.UserID)

			if err := f.Fetch(search, true); err != nil {
				return err
			}
			for i := 1; i < pages && f.HasMore(); i++ {
				if err := f.EnsureAhead(f.Len() - 1); err != nil {
					return err
				}
			}

			f.SetFilter(filter)
			if all {
				f.ToggleExpand()
			}

			if !interactive {
				printFeed(cmd, f)
				return nil
			}
			return runInteractive(cmd, c, s.UserID, f)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "server-side search term")
	cmd.Flags().StringVar(&filter, "filter", "", "client-side filter over fetched contacts")
	cmd.Flags().IntVar(&pages, "pages", 1, "how many pages to prefetch")
	cmd.Flags().BoolVar(&all, "all", false, "show all matches, not only first six")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "interactive feed mode")

	return cmd
}

// printFeed печатает видимую часть ленты и подсказки о скрытом.
func printFeed(cmd *cobra.Command, f *feed.Feed) {
	out := cmd.OutOrStdout()

	vis := f.Visible()
	if len(vis) == 0 {
		fmt.Fprintln(out, "no contacts")
	}
	for _, c := range vis {
		line := fmt.Sprintf("[%d] %s %s", c.ID, c.FirstName, c.LastName)
		if c.Phone != "" {
			line += "  " + c.Phone
		}
		if c.Email != "" {
			line += "  " + c.Email
		}
		fmt.Fprintln(out, line)
	}

	if f.ShowMoreAvailable() && !f.Expanded() {
		fmt.Fprintf(out, "... %d of %d matches shown (m — show more)\n", len(vis), len(f.Matching()))
	}
	if f.HasMore() {
		fmt.Fprintln(out, "more contacts on server (n — next page)")
	}
}

// runInteractive крутит цикл интерактивной ленты до q/EOF.
//
// Каждая успешная мутация (a/d) перечитывает ленту с первой страницы
// активного запроса (Refresh), чтобы экран отражал состояние сервера.
func runInteractive(cmd *cobra.Command, c *api.Client, userID int64, f *feed.Feed) error {
	out := cmd.OutOrStdout()

	printFeed(cmd, f)

	sc := bufio.NewScanner(cmd.InOrStdin())
	fmt.Fprint(out, "> ")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		cmdWord, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch cmdWord {
		case "q":
			return nil

		case "n":
			if err := f.EnsureAhead(f.Len() - 1); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}

		case "s":
			if err := f.Fetch(rest, true); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}

		case "f":
			f.SetFilter(rest)

		case "m":
			f.ToggleExpand()

		case "a":
			fields := strings.Fields(rest)
			if len(fields) < 2 {
				fmt.Fprintln(out, "usage: a <first> <last> [phone] [email]")
				break
			}
			var phone, email string
			if len(fields) > 2 {
				phone = fields[2]
			}
			if len(fields) > 3 {
				email = fields[3]
			}
			if err := validateContactFields(phone, email); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				break
			}
			id, err := c.AddContact(userID, fields[0], fields[1], phone, email)
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				break
			}
			fmt.Fprintf(out, "added contact %d\n", id)
			if err := f.Refresh(); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}

		case "d":
			id, err := strconv.ParseInt(rest, 10, 64)
			if err != nil || id <= 0 {
				fmt.Fprintln(out, "usage: d <id>")
				break
			}
			if err := c.DeleteContact(id, userID); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				break
			}
			fmt.Fprintf(out, "deleted contact %d\n", id)
			if err := f.Refresh(); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}

		case "":
			// пустая строка — просто перерисовать

		default:
			fmt.Fprintf(out, "unknown command %q (n/s/f/m/a/d/q)\n", cmdWord)
		}

		printFeed(cmd, f)
		fmt.Fprint(out, "> ")
	}
	return sc.Err()
}
