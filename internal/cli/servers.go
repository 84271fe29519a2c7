package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var serversCmd = &cobra.Command{
	Use:   "servers",
	Short: "Inspect servers",
}

var serversListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all servers on the account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		servers, err := client.Servers.List(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tIP\tREGION\tPHP\tREADY")

		for _, s := range servers {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%t\n",
				s.ID, s.Name, s.IPAddress, s.Region, s.PHPVersion, s.IsReady)
		}

		return w.Flush()
	},
}

var serversRebootCmd = &cobra.Command{
	Use:   "reboot <server-id>",
	Short: "Reboot a server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		serverID, err := parseID(args[0], "server id")
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.Servers.Reboot(cmd.Context(), serverID); err != nil {
			return err
		}

		fmt.Printf("Reboot requested for server %d.\n", serverID)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serversCmd)
	serversCmd.AddCommand(serversListCmd)
	serversCmd.AddCommand(serversRebootCmd)
}
