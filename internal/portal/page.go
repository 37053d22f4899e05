package portal

import "context"

// Page composes the three components shown to one browser session.
type Page struct {
	Registration *RegistrationForm
	Statistics   *StatisticsPanel
	Attendance   *AttendanceTracker
}

// NewPage wires the components. The attendance table reads the registration
// form's employee list directly.
func NewPage(api API) *Page {
	registration := NewRegistrationForm(api)
	return &Page{
		Registration: registration,
		Statistics:   NewStatisticsPanel(api),
		Attendance:   NewAttendanceTracker(api, registration),
	}
}

// Mount performs the initial employee list load.
func (p *Page) Mount(ctx context.Context) {
	p.Registration.Mount(ctx)
}
