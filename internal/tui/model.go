// Package tui is the interactive dashboard: a tabbed bubbletea app
// showing the habit list and the notification log for the signed-in
// user.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jyoti0525/habitflow/internal/constants"
	"github.com/Jyoti0525/habitflow/internal/habits"
	"github.com/Jyoti0525/habitflow/internal/models"
	"github.com/Jyoti0525/habitflow/internal/notifications"
	"github.com/Jyoti0525/habitflow/internal/tui/components/habitlist"
)

type Model struct {
	service *habits.Service
	log     *notifications.Log
	user    models.Session

	state     constants.SessionState
	habitList habitlist.Model
	noteLog   []models.Notification

	// pending delete target while in the confirm state
	deleteID   string
	deleteName string

	width  int
	height int
	status string
	err    error
}

func NewModel(service *habits.Service, log *notifications.Log, user models.Session) (Model, error) {
	list, err := service.List("", "")
	if err != nil {
		return Model{}, err
	}
	notes, err := log.All()
	if err != nil {
		return Model{}, err
	}

	return Model{
		service:   service,
		log:       log,
		user:      user,
		state:     constants.StateHabits,
		habitList: habitlist.New(list, 80, 20),
		noteLog:   notes,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refresh() error {
	list, err := m.service.List("", "")
	if err != nil {
		return err
	}
	m.habitList.SetHabits(list)

	notes, err := m.log.All()
	if err != nil {
		return err
	}
	m.noteLog = notes
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		frame := docStyle.GetVerticalFrameSize() + 4
		m.habitList.SetSize(msg.Width-docStyle.GetHorizontalFrameSize(), msg.Height-frame)
		return m, nil

	case tea.KeyMsg:
		if m.state == constants.StateConfirmDelete {
			return m.updateConfirmDelete(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.state == constants.StateHabits {
				m.state = constants.StateNotifications
			} else {
				m.state = constants.StateHabits
			}
			return m, nil
		}

		if m.state == constants.StateNotifications {
			return m.updateNotifications(msg)
		}

	case habitlist.ToggleHabitMsg:
		habit, err := m.service.ToggleComplete(msg.ID)
		if err != nil {
			m.err = err
			return m, nil
		}
		if habit.Completed {
			m.status = fmt.Sprintf("Completed %q, streak %d", habit.Name, habit.Streak)
		} else {
			m.status = fmt.Sprintf("Unmarked %q, streak %d", habit.Name, habit.Streak)
		}
		m.err = m.refresh()
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.state = constants.StateConfirmDelete
		m.deleteID = msg.ID
		m.deleteName = msg.Name
		return m, nil
	}

	if m.state == constants.StateHabits {
		var cmd tea.Cmd
		m.habitList, cmd = m.habitList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.service.Delete(m.deleteID); err != nil {
			m.err = err
		} else {
			m.status = fmt.Sprintf("Deleted %q", m.deleteName)
			m.err = m.refresh()
		}
		m.state = constants.StateHabits
		m.deleteID, m.deleteName = "", ""
	case "n", "N", "esc":
		m.state = constants.StateHabits
		m.deleteID, m.deleteName = "", ""
	}
	return m, nil
}

func (m Model) updateNotifications(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		if err := m.log.MarkAllRead(); err != nil {
			m.err = err
			return m, nil
		}
		m.status = "All notifications marked read"
		m.err = m.refresh()
	case "c":
		if err := m.log.Clear(); err != nil {
			m.err = err
			return m, nil
		}
		m.status = "Notification log cleared"
		m.err = m.refresh()
	}
	return m, nil
}
