// Command keygen exchanges sync service credentials for an authorization
// key. The key goes into SYNC_KEY (or the sync.key config field); the
// password itself is never stored.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/MKhiriev/go-card-keeper/internal/adapter"
)

func main() {
	endpoint := flag.String("endpoint", adapter.DefaultEndpoint, "sync service base URL")
	user := flag.String("user", "", "sync account name (prompted when empty)")
	envFile := flag.String("env-file", "", "append SYNC_USER/SYNC_KEY to this file")
	flag.Parse()

	if err := run(*endpoint, *user, *envFile); err != nil {
		fmt.Fprintf(os.Stderr, "keygen: %v\n", err)
		os.Exit(1)
	}
}

func run(endpoint, user, envFile string) error {
	reader := bufio.NewReader(os.Stdin)

	if user == "" {
		fmt.Print("Account: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("error reading account name: %w", err)
		}
		user = strings.TrimSpace(line)
	}
	if user == "" {
		return fmt.Errorf("account name is required")
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("error reading password: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	transport := adapter.NewHTTPSyncTransport()
	key, err := transport.Login(ctx, endpoint, user, string(password))
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Printf("\nSync key: %s\n", key)

	if envFile != "" {
		if err := appendEnvFile(envFile, user, key); err != nil {
			return err
		}
		fmt.Printf("Credentials appended to %s\n", envFile)
	}

	return nil
}

func appendEnvFile(path, user, key string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "SYNC_USER=%s\nSYNC_KEY=%s\n", user, key); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}

	return nil
}
