package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/prodscan/internal/controller"
	"github.com/mouse-blink/prodscan/internal/domain"
	mockDomain "github.com/mouse-blink/prodscan/internal/domain/mocks"
	m "github.com/mouse-blink/prodscan/internal/model"
)

// withMockWorkflow swaps the package wiring for one test and captures the
// command output.
func withMockWorkflow(t *testing.T) (*mockDomain.MockWorkflow, *bytes.Buffer) {
	t.Helper()

	mockWorkflow := mockDomain.NewMockWorkflow(t)

	origWorkflow := workflow
	origUI := ui

	workflow = mockWorkflow

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	ui = controller.NewSimpleUI(rootCmd)

	t.Cleanup(func() {
		workflow = origWorkflow
		ui = origUI
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	return mockWorkflow, buf
}

func TestTagsCommand(t *testing.T) {
	mockWorkflow, buf := withMockWorkflow(t)

	dir := t.TempDir()

	result := m.TagScanResult{
		Hits: []m.TagHit{
			{File: "prod1.yml", Prod: "prod1", Service: "billing", Tag: "team/feature-1", Line: 3},
		},
		FilesScanned:  1,
		FilesWithHits: 1,
		DistinctTags:  []string{"team/feature-1"},
	}

	mockWorkflow.On("ScanTags", mock.MatchedBy(func(args domain.TagScanArgs) bool {
		return args.Root == m.Path(dir) && !args.AllTags && args.Settings.RootBlock == "services"
	})).Return(result, nil)

	rootCmd.SetArgs([]string{"tags", dir})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "team/feature-1")
	assert.Contains(t, buf.String(), "billing")
}

func TestTagsCommandAllFlag(t *testing.T) {
	mockWorkflow, _ := withMockWorkflow(t)

	dir := t.TempDir()

	mockWorkflow.On("ScanTags", mock.MatchedBy(func(args domain.TagScanArgs) bool {
		return args.AllTags
	})).Return(m.TagScanResult{}, nil)

	rootCmd.SetArgs([]string{"tags", "--all", dir})
	require.NoError(t, rootCmd.Execute())

	t.Cleanup(func() { tagsAllFlag = false })
}

func TestServicesCommandRequiresMode(t *testing.T) {
	_, _ = withMockWorkflow(t)

	rootCmd.SetArgs([]string{"services", t.TempDir()})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "pick a mode")
}

func TestServicesCommandSummary(t *testing.T) {
	mockWorkflow, buf := withMockWorkflow(t)

	dir := t.TempDir()

	index := m.ServiceIndex{
		ProdsByService: map[string][]string{"billing": {"prod1", "prod2"}},
		ServicesByProd: map[string][]string{"prod1": {"billing"}, "prod2": {"billing"}},
		FilesScanned:   2,
	}

	mockWorkflow.On("QueryServices", mock.AnythingOfType("domain.ServiceQueryArgs")).Return(index, nil)

	rootCmd.SetArgs([]string{"services", "--services-summary", dir})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "billing")

	t.Cleanup(func() { servicesSummaryFlag = false })
}

func TestServicesCommandUnknownProd(t *testing.T) {
	mockWorkflow, _ := withMockWorkflow(t)

	index := m.ServiceIndex{
		ServicesByProd: map[string][]string{"prod1": {"billing"}},
	}

	mockWorkflow.On("QueryServices", mock.AnythingOfType("domain.ServiceQueryArgs")).Return(index, nil)

	rootCmd.SetArgs([]string{"services", "--prod", "ghost", t.TempDir()})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
	assert.Contains(t, err.Error(), "prod1")

	t.Cleanup(func() { servicesProdFlag = "" })
}

func TestProfilesAddRequiresService(t *testing.T) {
	_, _ = withMockWorkflow(t)

	rootCmd.SetArgs([]string{"profiles", "add", "staging"})
	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "service")
}

func TestProfilesAddDryRun(t *testing.T) {
	mockWorkflow, buf := withMockWorkflow(t)

	dir := t.TempDir()

	result := m.MutationResult{
		Outcomes: []m.MutationOutcome{
			{File: "prod1.yml", Prod: "prod1", Service: "billing", Status: m.MutationAdded, Line: 3},
		},
		Previews: map[m.Path]string{"prod1.yml": "+     active_profiles: staging\n"},
		DryRun:   true,
	}

	mockWorkflow.On("AddProfile", mock.MatchedBy(func(args domain.AddProfileArgs) bool {
		return args.Service == "billing" && args.Value == "staging" && args.DryRun
	})).Return(result, nil)

	rootCmd.SetArgs([]string{"profiles", "add", "staging", dir, "--service", "billing", "--dry-run"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "would update line 3")
	assert.Contains(t, buf.String(), "active_profiles: staging")

	t.Cleanup(func() {
		profilesServiceFlag = ""
		profilesDryRunFlag = false
	})
}

func TestOptsCommandListServices(t *testing.T) {
	mockWorkflow, buf := withMockWorkflow(t)

	dir := t.TempDir()

	result := m.OptionScanResult{
		ServicesByProd: map[string][]string{"prod1": {"auth", "billing"}},
		FilesScanned:   1,
	}

	mockWorkflow.On("ScanOptions", mock.AnythingOfType("domain.OptionScanArgs")).Return(result, nil)

	rootCmd.SetArgs([]string{"opts", "--list-services", dir})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, buf.String(), "prod1:")
	assert.Contains(t, buf.String(), "billing")

	t.Cleanup(func() { optsListServicesFlag = false })
}
