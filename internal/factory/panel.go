package factory

import (
	"net/http"

	"github.com/pterobot/pterobot/internal/config"
	"github.com/pterobot/pterobot/internal/log"
	"github.com/pterobot/pterobot/internal/panel"
)

func CreatePanelClient(conf config.Panel) panel.Client {
	httpClient := &http.Client{
		Timeout: conf.Timeout,
	}

	return panel.NewClient(httpClient, conf.Host, conf.Creds.ApplicationKey, conf.Creds.ClientKey).
		WithLogger(log.Logger().WithName("panel"))
}
