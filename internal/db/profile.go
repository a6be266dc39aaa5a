// internal/db/profile.go
package db

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nhath/quill/internal/config"
)

// ParamsFromProfile converts a saved profile into connection parameters
func ParamsFromProfile(p *config.Profile, log zerolog.Logger) ConnectParams {
	params := ConnectParams{
		Host:     p.Host,
		Port:     p.Port,
		User:     p.User,
		Password: p.Password,
		Database: p.Database,
		Logger:   log,
	}
	if p.SSHHost != "" {
		params.SSHConfig = &SSHConfig{
			Host:     p.SSHHost,
			Port:     p.SSHPort,
			User:     p.SSHUser,
			Password: p.SSHPassword,
			KeyPath:  p.SSHKeyPath,
		}
	}
	return params
}

// DescribeProfile connects to the profile's database, renders its schema
// description and disconnects.
func DescribeProfile(ctx context.Context, p *config.Profile, log zerolog.Logger) (string, error) {
	driver, err := NewDriver(DriverType(p.Type))
	if err != nil {
		return "", err
	}
	if err := driver.Connect(ctx, ParamsFromProfile(p, log)); err != nil {
		return "", err
	}
	defer driver.Close()

	return DescribeSchema(ctx, driver)
}
