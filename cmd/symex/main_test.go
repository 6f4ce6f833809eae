package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/symex/internal/adapters/config"
	"go.trai.ch/symex/internal/app"
	"go.trai.ch/symex/internal/core/ports"
	"go.trai.ch/symex/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(t *testing.T) (*app.Components, *mocks.MockModelClient, *mocks.MockCredentialSource) {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	tel := mocks.NewMockTelemetry(ctrl)
	creds := mocks.NewMockCredentialSource(ctrl)
	client := mocks.NewMockModelClient(ctrl)

	cfg := config.Default()
	application := app.New(cfg, creds, log, tel).
		WithClientFactory(func(ports.Credentials) ports.ModelClient { return client })

	return app.NewComponents(application, log, cfg), client, creds
}

func TestRun_Success(t *testing.T) {
	components, client, creds := newComponents(t)
	creds.EXPECT().Resolve("", "").Return(ports.Credentials{Username: "alice"}, nil)
	client.EXPECT().Projects(gomock.Any()).Return(nil, nil)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"projects"}, stderr, func(context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	})
	assert.Equal(t, 0, exitCode)
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"projects"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_ExecutionError(t *testing.T) {
	components, _, creds := newComponents(t)
	creds.EXPECT().Resolve("", "").Return(ports.Credentials{}, errors.New("no credentials"))

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"projects"}, stderr, func(context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	})
	assert.Equal(t, 1, exitCode)
}

func TestConfigFlag(t *testing.T) {
	assert.Equal(t, "", configFlag([]string{"projects"}))
	assert.Equal(t, "x.yaml", configFlag([]string{"--config", "x.yaml", "projects"}))
	assert.Equal(t, "x.yaml", configFlag([]string{"projects", "-c", "x.yaml"}))
	assert.Equal(t, "x.yaml", configFlag([]string{"--config=x.yaml"}))
	assert.Equal(t, "", configFlag([]string{"--config"}))
}
