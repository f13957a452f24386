package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/snapchat-ads-report/infrastructure/integrator/snapchat/snapclient"
	"github.com/vfg2006/snapchat-ads-report/internal/api"
	"github.com/vfg2006/snapchat-ads-report/internal/config"
	"github.com/vfg2006/snapchat-ads-report/internal/usecases/authorizing"
	"github.com/vfg2006/snapchat-ads-report/pkg/log"
)

var (
	credentialsFile string
	envFile         string
	listenAddr      string
	waitTimeout     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "snapchat-authorize",
	Short: "Obtain a Snapchat Marketing API refresh token",
	Long: `snapchat-authorize runs the OAuth2 authorization-code flow once and stores the
resulting credentials in the .env file read by snapchat-report.

Without --listen, open the printed URL, authorize, and paste the full URL you
were redirected to. With --listen, a local server receives the redirect itself.

Example usage:
  snapchat-authorize --credentials snapchat_credentials.json
  snapchat-authorize --listen 127.0.0.1:8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAuthorize,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&credentialsFile, "credentials", "c", config.DefaultCredentialsFile, "JSON file with client_id, client_secret and redirect_url")
	flags.StringVar(&envFile, "env-file", "", "file where credentials are saved (default .env)")
	flags.StringVar(&listenAddr, "listen", "", "serve the redirect on this address instead of asking for the URL")
	flags.DurationVar(&waitTimeout, "timeout", 5*time.Minute, "how long --listen waits for the redirect")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "Error: ")
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func runAuthorize(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	logCloser, err := log.Setup(log.Options{Level: cfg.App.LogLevel, File: cfg.App.LogFile})
	if err != nil {
		return err
	}
	defer logCloser.Close()

	creds, err := config.LoadBootstrapCredentials(credentialsFile)
	if err != nil {
		return err
	}

	if envFile == "" {
		envFile = config.EnvFilePath()
	}

	service := authorizing.NewService(
		*creds,
		cfg.Snapchat.AuthURL,
		snapclient.NewClient(cfg),
		config.NewEnvFileStorage(envFile),
		&http.Client{Timeout: cfg.Snapchat.HTTPTimeout},
	)

	fmt.Printf("Please go to %s and authorize access.\n", service.AuthorizationURL())

	var code string
	if listenAddr != "" {
		code, err = waitForCallback(service, creds.RedirectURL)
	} else {
		code, err = readCallback(service)
	}
	if err != nil {
		return err
	}

	result, err := service.Complete(context.Background(), code)
	if err != nil {
		return err
	}

	printResult(result, envFile)
	return nil
}

func readCallback(service *authorizing.Service) (string, error) {
	fmt.Print("Enter the full callback URL: ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		return "", errors.Wrap(err, "reading callback URL")
	}

	return service.CodeFromCallbackURL(line)
}

func waitForCallback(service *authorizing.Service, redirectURL string) (string, error) {
	redirect, err := url.Parse(redirectURL)
	if err != nil {
		return "", config.NewConfigError(fmt.Sprintf("invalid redirect_url: %v", err))
	}

	codes := make(chan string, 1)
	srv, err := api.New(listenAddr, redirect.Path, service, codes)
	if err != nil {
		return "", errors.Wrapf(err, "listening on %s", listenAddr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- srv.Run(ctx) }()

	fmt.Printf("Waiting for the redirect on http://%s%s ...\n", srv.Addr(), redirect.Path)

	select {
	case code := <-codes:
		cancel()
		<-runErr
		return code, nil
	case err := <-runErr:
		if err == nil {
			err = ctx.Err()
		}
		return "", errors.Wrap(err, "callback server stopped before receiving a code")
	}
}

func printResult(result *authorizing.Result, envFile string) {
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	green.Printf("Credentials saved to %s\n", envFile)
	fmt.Printf("Refresh token: %s\n", log.Redact(result.RefreshToken))

	if len(result.Organizations) == 0 {
		return
	}

	cyan.Println("ORGANIZATIONS")
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type")
	for _, org := range result.Organizations {
		table.Append(org.ID, org.Name, org.Type)
	}
	table.Render()

	if len(result.Organizations) > 1 {
		fmt.Println("Several organizations found: set SNAPCHAT_ORGANIZATION_ID and SNAPCHAT_AD_ACCOUNTS_ID yourself.")
	}
}
