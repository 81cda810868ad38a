// Package ui provides a Bubble Tea-based TUI for CarFinder.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/julietavg/carfind/internal/api"
	"github.com/julietavg/carfind/internal/favorites"
	"github.com/julietavg/carfind/internal/inventory"
	"github.com/julietavg/carfind/internal/prefs"
	"github.com/julietavg/carfind/internal/session"
)

// View represents the current active view.
type View int

const (
	ViewLogin View = iota
	ViewBrowse
)

// noticeTTL is how long a success notice stays in the header.
const noticeTTL = 4 * time.Second

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    api.Backend
	Session   *session.Controller
	Inventory *inventory.Store
	Favorites *favorites.Store
	Logger    *logrus.Logger
	ThemeName string
	SortName  string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    api.Backend
	session   *session.Controller
	inv       *inventory.Store
	favs      *favorites.Store
	log       *logrus.Logger
	prefsPath string

	// UI state
	keys   keyMap
	theme  Theme
	width  int
	height int
	ready  bool

	currentView View
	sess        session.Session

	login  loginState
	browse browseState

	// Modals
	showHelp    bool
	showForm    bool
	form        formState
	showConfirm bool
	confirm     confirmState
	showFilters bool
	filters     filterState

	// Header notice. noticeSeq invalidates stale expiry ticks; mutSeq
	// invalidates responses to superseded or abandoned mutations.
	notice    string
	noticeSeq int
	mutSeq    int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sort := inventory.SortPriceLow
	for _, key := range inventory.SortKeys {
		if string(key) == opts.SortName {
			sort = key
		}
	}

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		session:     opts.Session,
		inv:         opts.Inventory,
		favs:        opts.Favorites,
		log:         logger,
		prefsPath:   prefsPath,
		keys:        defaultKeyMap(),
		theme:       GetTheme(opts.ThemeName),
		currentView: ViewLogin,
		login:       newLoginState(),
		browse:      newBrowseState(sort),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		resumeCmd(m.ctx, m.session),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case sessionMsg:
		return m.handleSessionResult(msg)

	case saveMsg:
		return m.handleSaveResult(msg)

	case deleteMsg:
		return m.handleDeleteResult(msg)

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}
	if m.showForm {
		return m.renderForm()
	}
	if m.showConfirm {
		return m.renderConfirm()
	}
	if m.showFilters {
		return m.renderFilters()
	}

	if m.currentView == ViewLogin {
		return m.renderLogin()
	}
	return m.renderBrowse()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Help overlay: any key closes.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.showForm {
		return m.handleFormKey(msg)
	}
	if m.showConfirm {
		return m.handleConfirmKey(msg)
	}
	if m.showFilters {
		return m.handleFiltersKey(msg)
	}

	if m.currentView == ViewLogin {
		return m.handleLoginKey(msg)
	}
	return m.handleBrowseKey(msg)
}

// handleSessionResult applies the outcome of a login or resume probe.
func (m Model) handleSessionResult(msg sessionMsg) (tea.Model, tea.Cmd) {
	m.login.busy = false

	if msg.err != nil {
		// A silent resume failure just leaves the login view up.
		if msg.resumed && errors.Is(msg.err, session.ErrNoStoredCredentials) {
			return m, nil
		}
		if errors.Is(msg.err, session.ErrVerificationInFlight) {
			return m, nil
		}
		m.login.errText = session.Message(msg.err)
		return m, nil
	}

	m.sess = msg.outcome.Session
	m.inv.SetAll(msg.outcome.Vehicles)
	m.currentView = ViewBrowse
	m.browse = newBrowseState(m.browse.sort)
	m.login = newLoginState()
	return m, nil
}

// handleSaveResult applies the outcome of a create or update call.
func (m Model) handleSaveResult(msg saveMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.mutSeq {
		return m, nil
	}

	if msg.err != nil {
		if api.IsUnauthorized(msg.err) {
			m.forceLogout()
			return m, nil
		}
		m.form.busy = false
		m.form.applyFeedback(msg.err)
		return m, nil
	}

	m.showForm = false
	var notice string
	if msg.wasEdit {
		m.inv.Replace(msg.vehicle)
		notice = fmt.Sprintf("Car Id %d has been updated successfully.", msg.vehicle.ID)
	} else {
		m.inv.Prepend(msg.vehicle)
		m.browse.selected = 0
		notice = "Car has been added successfully."
	}
	m.rebaseFilters()
	cmd := m.setNotice(notice)
	return m, cmd
}

// handleDeleteResult applies the outcome of a delete call. A 404 means the
// record is already gone, which is the state we wanted.
func (m Model) handleDeleteResult(msg deleteMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.mutSeq {
		return m, nil
	}

	if msg.err != nil && !api.IsNotFound(msg.err) {
		if api.IsUnauthorized(msg.err) {
			m.forceLogout()
			return m, nil
		}
		m.confirm.busy = false
		m.confirm.errText = deleteErrorText(msg.err)
		return m, nil
	}

	m.showConfirm = false
	m.inv.Remove(msg.id)
	m.clampSelection()
	m.rebaseFilters()
	cmd := m.setNotice(fmt.Sprintf("Car Id %d has been deleted successfully.", msg.id))
	return m, cmd
}

// logout tears the session down and returns to the login view. The sort
// preference survives; search, filters, and selection do not.
func (m *Model) logout(message string) {
	m.session.Logout()
	m.inv.Reset()
	m.sess = session.Session{}
	m.currentView = ViewLogin
	m.login = newLoginState()
	m.login.errText = message
	m.browse = newBrowseState(m.browse.sort)
	m.showForm = false
	m.showConfirm = false
	m.showFilters = false
	m.showHelp = false
	m.notice = ""
	m.noticeSeq++
	m.mutSeq++
}

// forceLogout handles a 401 on a mutation: the stored credentials no longer
// work, so the whole session is over.
func (m *Model) forceLogout() {
	m.log.Warn("session rejected by server, forcing logout")
	m.logout("Your session has expired. Please sign in again.")
}

// setNotice installs a header notice and schedules its expiry.
func (m *Model) setNotice(text string) tea.Cmd {
	m.notice = text
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

// rebaseFilters re-derives filter bounds after the inventory changed. Range
// limits snap to the new inventory; surviving make/model selections are kept.
func (m *Model) rebaseFilters() {
	if m.browse.filters == nil {
		return
	}
	b := inventory.DeriveBounds(m.inv.Snapshot())
	c := b.FullRange(m.browse.filters.Makes, m.browse.filters.Models)
	m.browse.filters = &c
}

// persistPrefs saves the theme and sort preference, best effort.
func (m *Model) persistPrefs() {
	if m.prefsPath == "" {
		return
	}
	err := prefs.Save(m.prefsPath, prefs.Prefs{
		Theme: m.theme.Name,
		Sort:  string(m.browse.sort),
	})
	if err != nil {
		m.log.WithError(err).Warn("save preferences")
	}
}

// displayed returns the vehicle list as currently filtered and sorted.
func (m Model) displayed() []api.Vehicle {
	return inventory.Apply(m.inv.Snapshot(), inventory.Query{
		Search:    m.browse.search,
		Filters:   m.browse.filters,
		Sort:      m.browse.sort,
		SavedOnly: m.browse.savedOnly,
		Saved:     m.favs.IsSaved,
	})
}

// selectedVehicle returns the vehicle under the cursor, if any.
func (m Model) selectedVehicle() (api.Vehicle, bool) {
	vehicles := m.displayed()
	if m.browse.selected < 0 || m.browse.selected >= len(vehicles) {
		return api.Vehicle{}, false
	}
	return vehicles[m.browse.selected], true
}

// clampSelection keeps the cursor inside the displayed list.
func (m *Model) clampSelection() {
	n := len(m.displayed())
	if n == 0 {
		m.browse.selected = 0
		return
	}
	if m.browse.selected >= n {
		m.browse.selected = n - 1
	}
	if m.browse.selected < 0 {
		m.browse.selected = 0
	}
}

// renderMain assembles the browse screen.
func (m Model) renderBrowse() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderInventory())

	return b.String()
}

// Messages

type sessionMsg struct {
	outcome session.Outcome
	err     error
	resumed bool
}

type saveMsg struct {
	seq     int
	wasEdit bool
	vehicle api.Vehicle
	err     error
}

type deleteMsg struct {
	seq int
	id  int64
	err error
}

type noticeExpiredMsg struct {
	seq int
}

// Commands

func loginCmd(ctx context.Context, ctrl *session.Controller, username, password string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := ctrl.Login(ctx, username, password)
		return sessionMsg{outcome: outcome, err: err}
	}
}

func resumeCmd(ctx context.Context, ctrl *session.Controller) tea.Cmd {
	return func() tea.Msg {
		outcome, err := ctrl.Resume(ctx)
		return sessionMsg{outcome: outcome, err: err, resumed: true}
	}
}

func (m Model) saveCmd(v api.Vehicle) tea.Cmd {
	seq := m.mutSeq
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		if v.ID != 0 {
			saved, err := client.UpdateVehicle(ctx, v.ID, v)
			return saveMsg{seq: seq, wasEdit: true, vehicle: saved, err: err}
		}
		saved, err := client.CreateVehicle(ctx, v)
		return saveMsg{seq: seq, vehicle: saved, err: err}
	}
}

func (m Model) deleteCmd(id int64) tea.Cmd {
	seq := m.mutSeq
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		err := client.DeleteVehicle(ctx, id)
		return deleteMsg{seq: seq, id: id, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
