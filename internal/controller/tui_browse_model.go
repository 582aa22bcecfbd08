package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/prodscan/internal/model"
)

type tickMsg time.Time

// hitItem is one tag finding in the browse list.
type hitItem struct {
	prod    string
	service string
	tag     string
	line    int
}

func (h hitItem) FilterValue() string {
	return h.service + " " + h.tag
}

// Simple delegate for tag hit list items.
type hitDelegate struct {
	offset int
}

func (d hitDelegate) Height() int  { return 1 }
func (d hitDelegate) Spacing() int { return 0 }
func (d hitDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d hitDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	hit, ok := item.(hitItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	var prodStyle, tagStyle lipgloss.Style

	var displayTag string

	// Subtract prod column width (14) + line column (6) + spacing (4)
	width := lm.Width() - 24

	label := fmt.Sprintf("%s/%s", hit.service, hit.tag)

	if isSelected {
		prodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(14)
		tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		displayTag = animateScroll(label, width, d.offset)
	} else {
		prodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(14)
		tagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

		displayTag = truncateToWidth(label, width)
	}

	lineStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Width(6).
		Align(lipgloss.Right)

	lineCell := ""
	if hit.line > 0 {
		lineCell = fmt.Sprintf(":%d", hit.line)
	}

	out := fmt.Sprintf("%s  %s%s",
		prodStyle.Render(hit.prod),
		tagStyle.Render(displayTag),
		lineStyle.Render(lineCell),
	)
	_, _ = fmt.Fprint(w, out)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	// Gap between repeats
	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	runes := []rune(text + gap)
	n := len(runes)

	if n == 0 {
		return ""
	}

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// browseModel is the interactive list of tag findings.
type browseModel struct {
	width        int
	height       int
	hitList      list.Model
	delegate     hitDelegate
	result       m.TagScanResult
	animOffset   int
	lastSelected int
}

func newBrowseModel(result m.TagScanResult) browseModel {
	delegate := hitDelegate{}
	hitList := list.New([]list.Item{}, delegate, 80, 20)
	hitList.SetShowPagination(false)
	hitList.SetShowFilter(true)
	hitList.SetShowHelp(false)
	hitList.SetShowTitle(false)
	hitList.SetShowStatusBar(false)
	hitList.FilterInput.Placeholder = "Filter by service or tag…"

	items := make([]list.Item, 0, len(result.Hits))
	for _, hit := range result.Hits {
		items = append(items, hitItem{
			prod:    hit.Prod,
			service: hit.Service,
			tag:     hit.Tag,
			line:    hit.Line,
		})
	}

	hitList.SetItems(items)

	return browseModel{
		hitList:      hitList,
		delegate:     delegate,
		result:       result,
		lastSelected: -1,
	}
}

func (bm browseModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (bm browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.width = msg.Width
		bm.height = msg.Height
		bm.hitList.SetWidth(bm.width)

	case tickMsg:
		if bm.hitList.FilterState() != list.Filtering {
			bm.animOffset++
			bm.delegate.offset = bm.animOffset
			bm.hitList.SetDelegate(bm.delegate)
		}

		return bm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return bm, tea.Quit
		default:
			var newList list.Model

			newList, cmd = bm.hitList.Update(msg)
			bm.hitList = newList

			// Detect selection change to reset animation
			if bm.hitList.Index() != bm.lastSelected {
				bm.lastSelected = bm.hitList.Index()
				bm.animOffset = 0
				bm.delegate.offset = 0
				bm.hitList.SetDelegate(bm.delegate)
			}

			return bm, cmd
		}
	}

	return bm, cmd
}

func (bm browseModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("🔎 Prodscan Tag Report")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Hits: %s   Distinct Tags: %s   Files: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(bm.result.Hits))),
		accentStyle.Render(fmt.Sprintf("%d", len(bm.result.DistinctTags))),
		accentStyle.Render(fmt.Sprintf("%d/%d", bm.result.FilesWithHits, bm.result.FilesScanned)),
	))

	table := bm.renderTable()

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(bm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (bm browseModel) renderTable() string {
	// Screen height minus title, summary, footer, border and padding.
	listHeight := bm.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := bm.width - 6

	bm.hitList.SetHeight(listHeight)
	bm.hitList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-14s  %s", "Prod", "Service/Tag"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			bm.hitList.View(),
		),
	)
}

// itemsPerPage calculates how many hits fit on screen outside the TUI.
func (bm browseModel) itemsPerPage() int {
	if bm.height == 0 {
		return 10
	}

	available := bm.height - 9
	if available < 1 {
		return 1
	}

	return available
}

// needsPagination reports whether the list is too large to print directly.
func (bm browseModel) needsPagination() bool {
	if len(bm.result.Hits) == 0 {
		return false
	}

	return len(bm.result.Hits) > bm.itemsPerPage() && bm.height > 0
}

// plainView renders the findings without entering the alternate screen.
func (bm browseModel) plainView() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Found %d tag hit(s) in %d of %d file(s):\n\n",
		len(bm.result.Hits), bm.result.FilesWithHits, bm.result.FilesScanned)

	for _, hit := range bm.result.Hits {
		if hit.Line > 0 {
			fmt.Fprintf(&b, "  %-14s %s/%s:%d\n", hit.Prod, hit.Service, hit.Tag, hit.Line)
		} else {
			fmt.Fprintf(&b, "  %-14s %s/%s\n", hit.Prod, hit.Service, hit.Tag)
		}
	}

	return b.String()
}
