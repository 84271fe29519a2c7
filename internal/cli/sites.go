package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	forge "github.com/lexfrei/go-forge"
)

var (
	siteServerID     int64
	createDomain     string
	createWebDir     string
	createProjectDir string
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Manage sites on a server",
}

var sitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sites on a server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		sites, err := client.Sites.List(cmd.Context(), siteServerID)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tDOMAIN\tREPOSITORY\tSTATUS\tQUICK DEPLOY")

		for _, s := range sites {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n",
				s.ID, s.Name, s.Repository, s.Status, s.QuickDeploy)
		}

		return w.Flush()
	},
}

var sitesGetCmd = &cobra.Command{
	Use:   "get <site-id>",
	Short: "Show one site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		siteID, err := parseID(args[0], "site id")
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		site, err := client.Sites.Get(cmd.Context(), siteServerID, siteID)
		if err != nil {
			return err
		}

		printSite(os.Stdout, site)

		return nil
	},
}

var sitesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a site",
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		site, err := client.Sites.Create(cmd.Context(), siteServerID, forge.CreateSiteRequest{
			Domain:       createDomain,
			WebDirectory: createWebDir,
			ProjectRoot:  createProjectDir,
		})
		if err != nil {
			var taken *forge.DomainTakenError
			if errors.As(err, &taken) {
				return errors.Newf("domain %s is already in use on this panel", taken.Domain)
			}

			return err
		}

		fmt.Printf("Site %d (%s) is being installed.\n", site.ID, site.Name)

		return nil
	},
}

var sitesDeleteCmd = &cobra.Command{
	Use:   "delete <site-id>",
	Short: "Delete a site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		siteID, err := parseID(args[0], "site id")
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.Sites.Delete(cmd.Context(), siteServerID, siteID); err != nil {
			return err
		}

		fmt.Printf("Site %d deleted.\n", siteID)

		return nil
	},
}

var sitesDeployCmd = &cobra.Command{
	Use:   "deploy <site-id>",
	Short: "Trigger a deployment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		siteID, err := parseID(args[0], "site id")
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.Sites.Deploy(cmd.Context(), siteServerID, siteID); err != nil {
			return err
		}

		fmt.Printf("Deployment started for site %d.\n", siteID)

		return nil
	},
}

var sitesScriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Read or replace a site's deployment script",
}

var sitesScriptGetCmd = &cobra.Command{
	Use:   "get <site-id>",
	Short: "Print the deployment script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		siteID, err := parseID(args[0], "site id")
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		script, err := client.Sites.DeployScript(cmd.Context(), siteServerID, siteID)
		if err != nil {
			return err
		}

		fmt.Println(script)

		return nil
	},
}

var sitesScriptPutCmd = &cobra.Command{
	Use:   "put <site-id>",
	Short: "Replace the deployment script with stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		siteID, err := parseID(args[0], "site id")
		if err != nil {
			return err
		}

		script, err := io.ReadAll(os.Stdin)
		if err != nil {
			return errors.Wrap(err, "failed to read script from stdin")
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.Sites.UpdateDeployScript(cmd.Context(), siteServerID, siteID, string(script)); err != nil {
			return err
		}

		fmt.Printf("Deployment script updated for site %d.\n", siteID)

		return nil
	},
}

func printSite(w io.Writer, site *forge.Site) {
	fmt.Fprintf(w, "ID:           %d\n", site.ID)
	fmt.Fprintf(w, "Domain:       %s\n", site.Name)
	fmt.Fprintf(w, "Directory:    %s\n", site.Directory)
	fmt.Fprintf(w, "Repository:   %s\n", site.Repository)
	fmt.Fprintf(w, "Status:       %s\n", site.Status)
	fmt.Fprintf(w, "Quick deploy: %t\n", site.QuickDeploy)
	fmt.Fprintf(w, "Created:      %s\n", site.CreatedAt)
}

func parseID(raw, what string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Newf("invalid %s: %q", what, raw)
	}

	return id, nil
}

func init() {
	rootCmd.AddCommand(sitesCmd)

	sitesCmd.PersistentFlags().Int64VarP(&siteServerID, "server", "s", 0, "Server ID the sites belong to")
	_ = sitesCmd.MarkPersistentFlagRequired("server")

	sitesCmd.AddCommand(sitesListCmd)
	sitesCmd.AddCommand(sitesGetCmd)
	sitesCmd.AddCommand(sitesCreateCmd)
	sitesCmd.AddCommand(sitesDeleteCmd)
	sitesCmd.AddCommand(sitesDeployCmd)
	sitesCmd.AddCommand(sitesScriptCmd)

	sitesScriptCmd.AddCommand(sitesScriptGetCmd)
	sitesScriptCmd.AddCommand(sitesScriptPutCmd)

	sitesCreateCmd.Flags().StringVarP(&createDomain, "domain", "d", "", "Root domain for the new site")
	sitesCreateCmd.Flags().StringVar(&createWebDir, "web-directory", "", "Web directory (default /public)")
	sitesCreateCmd.Flags().StringVar(&createProjectDir, "project-root", "", "Project root (default /)")
	_ = sitesCreateCmd.MarkFlagRequired("domain")
}
