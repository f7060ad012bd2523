package status

import (
	"fmt"
	"strings"

	"github.com/bnema/cubesign/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Report is everything the status view shows. SessionStatus.Check is nil
// unless the caller verified the session against the remote site.
type Report struct {
	ConfigPath     string
	Schedule       domain.ScheduleConfig
	Target         domain.CheckInTarget
	TodaySucceeded bool
	Sessions       []SessionStatus
}

type SessionStatus struct {
	Name    string
	Check   *domain.SessionCheck
	Profile domain.Profile
}

func renderView(report Report, s styles) string {
	lines := []string{
		s.title.Render("ClassCube Check-in Status"),
		s.header.Render("config: " + report.ConfigPath),
		s.detail.Render("schedule: " + scheduleLabel(report.Schedule)),
		s.detail.Render(targetLabel(report.Target)),
	}

	if report.TodaySucceeded {
		lines = append(lines, s.good.Render("today: signed in"))
	} else {
		lines = append(lines, s.detail.Render("today: pending"))
	}

	lines = append(lines, s.section.Render(s.header.Render(fmt.Sprintf("sessions: %d", len(report.Sessions)))))

	if len(report.Sessions) == 0 {
		lines = append(lines, s.empty.Render("No sessions configured. Run `cubesign init` first."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, session := range report.Sessions {
		lines = append(lines, renderSession(session, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSession(session SessionStatus, s styles) string {
	parts := []string{s.session.Render(session.Name)}

	if session.Check != nil {
		switch session.Check.Status {
		case domain.VerifyValid:
			label := "valid"
			if session.Profile.Name != "" {
				label = "valid, signed in as " + session.Profile.Name
			}
			parts = append(parts, s.good.Render(label))
			if len(session.Profile.Classes) > 0 {
				parts = append(parts, s.detail.Render(classesLabel(session.Profile.Classes)))
			}
		case domain.VerifyInvalid:
			parts = append(parts, s.warning.Render("cookie expired"))
		default:
			parts = append(parts, s.warning.Render("unreachable: "+session.Check.Detail))
		}
	}

	return strings.Join(parts, "  ")
}

func scheduleLabel(schedule domain.ScheduleConfig) string {
	var parts []string
	if schedule.FixedTime != nil {
		parts = append(parts, "daily at "+schedule.FixedTime.String())
	}
	if window := schedule.Range; window != nil {
		label := fmt.Sprintf("window %s-%s", window.Window.Start, window.Window.End)
		if window.RetryEnabled {
			if window.InfiniteRetry {
				label += fmt.Sprintf(", retry every %dm", window.RetryIntervalMinutes)
			} else {
				label += fmt.Sprintf(", retry every %dm up to %d times", window.RetryIntervalMinutes, window.MaxRetries)
			}
		}
		parts = append(parts, label)
	}
	if len(parts) == 0 {
		return "not configured"
	}

	return strings.Join(parts, "; ")
}

func targetLabel(target domain.CheckInTarget) string {
	if target.ClassID == "" {
		return "target: not configured"
	}

	return fmt.Sprintf("target: class %s at %.6f, %.6f", target.ClassID, target.Longitude, target.Latitude)
}

func classesLabel(classes []domain.ClassInfo) string {
	names := make([]string, 0, len(classes))
	for _, class := range classes {
		if class.Name != "" {
			names = append(names, fmt.Sprintf("%s (%s)", class.Name, class.ID))
			continue
		}
		names = append(names, class.ID)
	}

	return "classes: " + strings.Join(names, ", ")
}
