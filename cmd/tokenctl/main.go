package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/adapter"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/logger"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/service"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/token"
	"github.com/johan-ferguson-ai/signalsurge-k8s/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	var (
		hostname       string
		sshPort        int
		sshUsername    string
		copyToClip     bool
		registrarAddr  string
		requestTimeout time.Duration
		showVersion    bool
	)

	flag.StringVar(&hostname, "host", "", "Hostname or address of the server the token grants access to")
	flag.IntVar(&sshPort, "port", 22, "SSH port of the server")
	flag.StringVar(&sshUsername, "user", "root", "SSH username on the server")
	flag.BoolVar(&copyToClip, "copy", false, "Copy the issued token to the system clipboard")
	flag.StringVar(&registrarAddr, "register-url", "", "Registrar address; when set, the token is submitted for registration after issue")
	flag.DurationVar(&requestTimeout, "timeout", 30*time.Second, "Registrar request timeout")
	flag.BoolVar(&showVersion, "version", false, "Print build info and exit")
	flag.Parse()

	if showVersion {
		printBuildInfo()
		return
	}

	log := logger.NewLogger("tokenctl")

	if hostname == "" {
		log.Fatal().Msg("-host is required")
	}

	issuer := service.NewTokenIssueService(token.NewCodec(), log)

	issued, err := issuer.Issue(context.Background(), models.IssueSpec{
		Hostname:    hostname,
		SSHPort:     sshPort,
		SSHUsername: sshUsername,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error issuing token")
	}

	fmt.Printf("Token:      %s\n", issued.Token)
	fmt.Printf("Public key: %s\n", issued.PublicKey)
	fmt.Printf("Expires at: %s\n", issued.ExpiresAt.Format(time.RFC3339))

	if copyToClip {
		if err := clipboard.WriteAll(issued.Token); err != nil {
			log.Err(err).Msg("error copying token to clipboard")
		} else {
			fmt.Println("Token copied to clipboard")
		}
	}

	if registrarAddr != "" {
		registrar, err := adapter.NewHTTPRegistrarClient(registrarAddr, requestTimeout, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating registrar client")
		}

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		registered, err := registrar.Register(ctx, issued.Token)
		if err != nil {
			log.Fatal().Err(err).Msg("error registering token")
		}

		fmt.Printf("Registered: %s (id %s)\n", registered.Hostname, registered.ID)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
