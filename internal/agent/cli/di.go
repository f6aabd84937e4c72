package cli

import (
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-contact-manager/internal/agent/api"
	"github.com/IvanChernomyrdin/go-contact-manager/internal/agent/session"
)

// для тестов
var (
	NewAPIClient = api.NewClient
	SaveSession  = session.Save
	ClearSession = session.Clear
	ReadPassword = func(cmd *cobra.Command, fromStdin bool) (string, error) {
		return readPassword(cmd, fromStdin)
	}
)
