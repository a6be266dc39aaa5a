// internal/db/ssh.go
package db

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// SSHConfig holds SSH connection details
type SSHConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	KeyPath  string
}

// SSHTunnel represents an active SSH connection that can dial
type SSHTunnel struct {
	client *ssh.Client
}

// NewSSHTunnel establishes an SSH connection
func NewSSHTunnel(config *SSHConfig, log zerolog.Logger) (*SSHTunnel, error) {
	if config.Host == "" {
		return nil, fmt.Errorf("SSH host is required")
	}

	authMethods := authMethods(config, log)
	if len(authMethods) == 0 {
		return nil, fmt.Errorf("no valid SSH authentication methods found")
	}

	port := config.Port
	if port == 0 {
		port = 22
	}

	cliConfig := &ssh.ClientConfig{
		User:            config.User,
		Auth:            authMethods,
		HostKeyCallback: hostKeyCallback(log),
		Timeout:         15 * time.Second,
	}

	address := net.JoinHostPort(config.Host, fmt.Sprint(port))
	log.Debug().Str("addr", address).Str("user", config.User).Msg("ssh dial")
	client, err := ssh.Dial("tcp", address, cliConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to dial SSH: %w", err)
	}
	log.Debug().Str("addr", address).Msg("ssh connected")

	return &SSHTunnel{client: client}, nil
}

// authMethods collects key file, agent and password auth in that order
func authMethods(config *SSHConfig, log zerolog.Logger) []ssh.AuthMethod {
	var methods []ssh.AuthMethod

	if config.KeyPath != "" {
		if signer, err := loadSigner(config.KeyPath, config.Password); err == nil {
			log.Debug().Str("type", signer.PublicKey().Type()).Msg("ssh key loaded")
			methods = append(methods, ssh.PublicKeys(signer))
		} else {
			log.Warn().Err(err).Str("path", config.KeyPath).Msg("ssh key unusable")
		}
	}

	if socket := os.Getenv("SSH_AUTH_SOCK"); socket != "" {
		if conn, err := net.Dial("unix", socket); err == nil {
			methods = append(methods, ssh.PublicKeysCallback(agent.NewClient(conn).Signers))
		} else {
			log.Warn().Err(err).Msg("ssh agent unreachable")
		}
	}

	if config.Password != "" {
		methods = append(methods, ssh.Password(config.Password))
		// Some servers only offer keyboard-interactive
		methods = append(methods, ssh.KeyboardInteractive(func(user, instruction string, questions []string, echos []bool) ([]string, error) {
			answers := make([]string, len(questions))
			for i := range answers {
				answers[i] = config.Password
			}
			return answers, nil
		}))
	}

	return methods
}

func loadSigner(keyPath, passphrase string) (ssh.Signer, error) {
	key, err := os.ReadFile(expandHome(keyPath))
	if err != nil {
		return nil, err
	}
	signer, err := ssh.ParsePrivateKey(key)
	if err != nil && passphrase != "" {
		signer, err = ssh.ParsePrivateKeyWithPassphrase(key, []byte(passphrase))
	}
	return signer, err
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// hostKeyCallback verifies against ~/.ssh/known_hosts when it exists
func hostKeyCallback(log zerolog.Logger) ssh.HostKeyCallback {
	if cb, err := knownhosts.New(expandHome("~/.ssh/known_hosts")); err == nil {
		return cb
	}
	log.Warn().Msg("known_hosts unavailable, host key not verified")
	return ssh.InsecureIgnoreHostKey()
}

// DialContext connects to a remote address through the tunnel
func (t *SSHTunnel) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return t.client.DialContext(ctx, network, addr)
}

// Close closes the SSH connection
func (t *SSHTunnel) Close() error {
	return t.client.Close()
}
