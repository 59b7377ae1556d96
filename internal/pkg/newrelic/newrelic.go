package newrelic

import (
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/reveda-health/reveda-server/internal/pkg/logger"
	"github.com/reveda-health/reveda-server/internal/pkg/models"
)

// InitNewRelic initializes the New Relic application based on
// configuration. Returns nil when disabled so the caller can continue
// without instrumentation.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without it",
			logger.Err(err))
		return nil
	}

	return nrApp
}
