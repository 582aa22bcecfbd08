// Package controller provides output adapters for displaying scan results.
package controller

import (
	m "github.com/mouse-blink/prodscan/internal/model"
)

// UI defines the interface for displaying scan and mutation results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayTagReport(result m.TagScanResult) error
	DisplayProdsWithService(service string, prods []string) error
	DisplayServicesOnProd(prod string, services []string) error
	DisplayServicesSummary(index m.ServiceIndex) error
	DisplayProdsSummary(index m.ServiceIndex) error
	DisplayOptionsReport(result m.OptionScanResult) error
	DisplayServiceList(servicesByProd map[string][]string) error
	DisplayMutationResult(result m.MutationResult) error
}
