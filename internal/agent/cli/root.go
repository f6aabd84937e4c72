// Package cli реализует командный интерфейс (CLI) клиентского приложения contactcli.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку локальной сессии (identity пользователя) из файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-contact-manager/internal/agent/session"
	serr "github.com/IvanChernomyrdin/go-contact-manager/internal/shared/errors"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// В структуре хранятся параметры подключения к серверу и загруженная сессия.
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера контактов (например, "http://127.0.0.1:8080").
	ServerURL string

	// SessionPath — путь к файлу локальной сессии.
	SessionPath string
	// Session — загруженная сессия. nil, если пользователь не залогинен
	// или сессия истекла (20 минут с момента логина).
	Session *session.Session
}

// requireSession возвращает сессию или ErrNoSession, если её нет/она истекла.
func (a *App) requireSession() (*session.Session, error) {
	if a.Session == nil || a.Session.Expired() {
		return nil, serr.ErrNoSession
	}
	return a.Session, nil
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE выполняется инициализация состояния приложения:
// определяется путь к файлу сессии и загружается сохранённая сессия.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: "http://127.0.0.1:8080",
	}

	cmd := &cobra.Command{
		Use:   "contactcli",
		Short: "contactcli — клиент менеджера контактов",
		Long: `contactcli.

Команды:
  register  Регистрация нового пользователя
  login     Вход (сохраняет локальную сессию на 20 минут)
  logout    Удалить локальную сессию
  list      Лента контактов (постраничная подгрузка, фильтр, поиск)
  add       Добавить контакт
  update    Обновить контакт (пустые поля сохраняют прежние значения)
  delete    Удалить контакт
  version   Версия и дата сборки

Примеры:

Регистрация:
  contactcli register --first-name Ivan --last-name Petrov --login ivan

Логин:
  contactcli login --login ivan
  (пароль запрашивается скрытым вводом; сессия сохраняется локально)

Лента:
  contactcli list --search an
  contactcli list --interactive
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := session.DefaultPath()
			if err != nil {
				return err
			}
			app.SessionPath = p

			s, err := session.Load(app.SessionPath)
			if err != nil {
				if errors.Is(err, serr.ErrNoSession) {
					// не залогинен — не ошибка на уровне root,
					// команды сами проверяют requireSession
					app.Session = nil
					return nil
				}
				return err
			}
			app.Session = s
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", "http://127.0.0.1:8080", "server base URL")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewLogoutCmd(app))
	cmd.AddCommand(NewListCmd(app))
	cmd.AddCommand(NewAddCmd(app))
	cmd.AddCommand(NewUpdateCmd(app))
	cmd.AddCommand(NewDeleteCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
