package viz

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/neurospark/internal/fleet"
)

var _ = Describe("App", func() {
	var (
		clock *clockwork.FakeClock
		app   App
	)

	update := func(msg tea.Msg) tea.Cmd {
		next, cmd := app.Update(msg)
		app = next.(App)
		return cmd
	}

	BeforeEach(func() {
		clock = clockwork.NewFakeClock()
		app = NewApp(testOptions(clock))
		update(tea.WindowSizeMsg{Width: 120, Height: 30})
	})

	It("starts on the landing page", func() {
		Expect(app.Route()).To(Equal("/"))
		Expect(app.View()).To(ContainSubstring("NeuroSpark"))
	})

	It("routes to the dashboard and back", func() {
		msg := run(update(keyMsg("d")))
		Expect(update(msg)).NotTo(BeNil())
		Expect(app.Route()).To(Equal("/dashboard"))
		Expect(app.View()).To(ContainSubstring("FLEET UNITS (5)"))

		msg = run(update(keyMsg("esc")))
		update(msg)
		Expect(app.Route()).To(Equal("/"))
	})

	It("replays the counters each time the dashboard opens", func() {
		update(navigateMsg{to: routeDashboard})
		first := app.dashboard
		for range 20 {
			clock.Advance(testAnimation.TickInterval)
			update(FrameMsg{loop: first.loop, At: clock.Now()})
		}
		Expect(app.dashboard.Value("panel_efficiency")).To(Equal(98.2))

		update(navigateMsg{to: routeLanding})
		update(navigateMsg{to: routeDashboard})
		Expect(app.dashboard.Value("panel_efficiency")).To(Equal(0.0))

		// frames from the old dashboard are dropped
		Expect(update(FrameMsg{loop: first.loop, At: clock.Now()})).To(BeNil())
	})

	It("carries the theme across screens", func() {
		update(keyMsg("t"))
		update(navigateMsg{to: routeDashboard})
		Expect(app.dashboard.Theme().Name).To(Equal("solar"))

		update(keyMsg("t"))
		update(navigateMsg{to: routeLanding})
		Expect(app.landing.Theme().Name).To(Equal("panel"))
	})

	It("applies reloaded fixtures to every screen", func() {
		update(navigateMsg{to: routeDashboard})

		fx, err := fleet.Parse(fleet.DefaultDocument())
		Expect(err).NotTo(HaveOccurred())
		fx.Robots = fx.Robots[:3]
		fx.Summary.SystemStatus = "Degraded"

		update(FixturesMsg{Fixtures: fx})
		Expect(app.View()).To(ContainSubstring("FLEET UNITS (3)"))
		Expect(app.View()).To(ContainSubstring("Degraded"))
		Expect(app.landing.opts.Fixtures).To(BeIdenticalTo(fx))

		Expect(update(FixturesMsg{})).To(BeNil())
	})

	It("drops the dashboard when going back so reloads leave it stopped", func() {
		update(navigateMsg{to: routeDashboard})
		closed := app.dashboard
		update(navigateMsg{to: routeLanding})
		Expect(app.dashboard).To(BeNil())

		fx, err := fleet.Parse(fleet.DefaultDocument())
		Expect(err).NotTo(HaveOccurred())
		update(FixturesMsg{Fixtures: fx})

		Expect(closed.Settled()).To(BeTrue())
		Expect(closed.loop.queue.Len()).To(BeZero())
		Expect(app.View()).To(ContainSubstring("NeuroSpark"))
	})

	It("can start on the dashboard", func() {
		app = NewDashboardApp(testOptions(clock))
		Expect(app.Route()).To(Equal("/dashboard"))
		Expect(app.Init()).NotTo(BeNil())
	})
})
