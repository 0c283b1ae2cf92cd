package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aversacc/avers-site/internal/client"
	"github.com/aversacc/avers-site/internal/version"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "avers",
	Short: "Avers Financial CLI",
	Long:  `Avers Financial CLI talks to the aversacc.com contact API from the terminal.`,
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message through the contact form",
	Long: `Send a message through the Avers Financial contact form.

Example:
  avers contact --name "Jane Doe" --email jane@example.com --message "Let's talk"`,
	Run: func(cmd *cobra.Command, args []string) {
		serverURL, _ := cmd.Flags().GetString("server")
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		message, _ := cmd.Flags().GetString("message")
		token, _ := cmd.Flags().GetString("token")

		opts := []client.Option{}
		if token != "" {
			opts = append(opts, client.WithTokenSource(client.StaticTokenSource(token)))
		}
		c := client.New(serverURL, opts...)

		form := &client.Form{
			Name:    name,
			Email:   email,
			Message: message,
		}

		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Sending message..."
		s.Start()

		result, err := c.Submit(context.Background(), form)
		s.Stop()

		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(result.UserMessage)
		if result.Outcome != client.OutcomeSuccess {
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.GetVersionString())
	},
}

func init() {
	contactCmd.Flags().String("server", "https://aversacc.com", "Contact API base URL")
	contactCmd.Flags().String("name", "", "Your name")
	contactCmd.Flags().String("email", "", "Your email address")
	contactCmd.Flags().String("message", "", "The message to send")
	contactCmd.Flags().String("token", "", "Pre-obtained Turnstile token (optional)")

	rootCmd.AddCommand(contactCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
