package viz

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/neurospark/internal/fleet"
)

var _ = Describe("Dashboard", func() {
	var (
		clock *clockwork.FakeClock
		m     Dashboard
	)

	// settle delivers frames until every counter finished.
	settle := func() tea.Cmd {
		var cmd tea.Cmd
		for i := 0; i < 20 && !m.Settled(); i++ {
			var next tea.Model
			next, cmd = frame(m, m.loop, clock)
			m = next.(Dashboard)
		}
		return cmd
	}

	BeforeEach(func() {
		clock = clockwork.NewFakeClock()
		m = NewDashboard(testOptions(clock))
	})

	AfterEach(func() {
		m.Close()
	})

	It("shows every counter at zero before the first frame", func() {
		Expect(m.Value("panel_efficiency")).To(Equal(0.0))
		Expect(m.Value("energy_output")).To(Equal(0.0))
		Expect(m.Settled()).To(BeFalse())
		Expect(m.Init()).NotTo(BeNil())
	})

	It("counts every KPI up to its fixture value", func() {
		cmd := settle()

		Expect(m.Settled()).To(BeTrue())
		Expect(cmd).To(BeNil())
		Expect(m.Value("panel_efficiency")).To(Equal(98.2))
		Expect(m.Value("panel_efficiency.caption")).To(Equal(12.8))
		Expect(m.Value("energy_output")).To(Equal(1847.0))
		Expect(m.Value("water_saved")).To(Equal(68.4))
		Expect(m.Value("cleaning_cycles")).To(Equal(4.0))
		Expect(m.Value("coverage")).To(Equal(94.2))

		view := m.View()
		Expect(view).To(ContainSubstring("1847 kWh"))
		Expect(view).To(ContainSubstring("All Systems Optimal"))
		Expect(view).To(ContainSubstring("ACTIVE ALERTS (4)"))
	})

	It("shows intermediate values truncated to tenths", func() {
		next, _ := frame(m, m.loop, clock)
		m = next.(Dashboard)

		Expect(m.Value("panel_efficiency")).To(Equal(9.8))
		Expect(m.Value("cleaning_cycles")).To(Equal(0.4))
	})

	It("ignores frames from other loops", func() {
		other := newFrameLoop(clock, testAnimation.TickInterval)
		next, cmd := m.Update(FrameMsg{loop: other, At: clock.Now()})
		m = next.(Dashboard)

		Expect(cmd).To(BeNil())
		Expect(m.Value("panel_efficiency")).To(Equal(0.0))
	})

	It("toggles a robot's detail row", func() {
		next, _ := m.Update(keyMsg("j"))
		m = next.(Dashboard)
		next, _ = m.Update(keyMsg("enter"))
		m = next.(Dashboard)

		id, ok := m.Selected()
		Expect(ok).To(BeTrue())
		Expect(id).To(Equal(2))
		Expect(m.View()).To(ContainSubstring("Cycles today: 5"))

		next, _ = m.Update(keyMsg("enter"))
		m = next.(Dashboard)
		_, ok = m.Selected()
		Expect(ok).To(BeFalse())
	})

	It("keeps the cursor inside the roster", func() {
		for range 10 {
			next, _ := m.Update(keyMsg("j"))
			m = next.(Dashboard)
		}
		Expect(m.cursor).To(Equal(4))

		for range 10 {
			next, _ := m.Update(keyMsg("k"))
			m = next.(Dashboard)
		}
		Expect(m.cursor).To(Equal(0))
	})

	It("cycles the theme", func() {
		next, _ := m.Update(keyMsg("t"))
		m = next.(Dashboard)
		Expect(m.Theme().Name).To(Equal("solar"))
		Expect(m.help.Styles.ShortDesc.GetForeground()).To(Equal(ThemeSolar.Muted))
	})

	It("freezes counters and asks to go back on b", func() {
		next, _ := frame(m, m.loop, clock)
		m = next.(Dashboard)
		before := m.Value("panel_efficiency")

		next, cmd := m.Update(keyMsg("b"))
		m = next.(Dashboard)
		Expect(run(cmd)).To(Equal(navigateMsg{to: routeLanding}))

		next, _ = frame(m, m.loop, clock)
		m = next.(Dashboard)
		Expect(m.Value("panel_efficiency")).To(Equal(before))
		Expect(m.Settled()).To(BeTrue())
	})

	It("quits on q", func() {
		_, cmd := m.Update(keyMsg("q"))
		Expect(run(cmd)).To(Equal(tea.Quit()))
	})

	It("animates toward reloaded fixture values", func() {
		settle()

		fx, err := fleet.Parse(fleet.DefaultDocument())
		Expect(err).NotTo(HaveOccurred())
		fx.KPIs[0].Value = 90
		fx.Robots = fx.Robots[:2]

		next, _ := m.Update(keyMsg("j"))
		m = next.(Dashboard)
		next, _ = m.Update(keyMsg("j"))
		m = next.(Dashboard)
		next, _ = m.Update(keyMsg("enter"))
		m = next.(Dashboard)

		next, cmd := m.Update(FixturesMsg{Fixtures: fx})
		m = next.(Dashboard)
		Expect(cmd).NotTo(BeNil())
		Expect(m.cursor).To(Equal(1))
		_, ok := m.Selected()
		Expect(ok).To(BeFalse())

		next, _ = frame(m, m.loop, clock)
		m = next.(Dashboard)
		Expect(m.Value("panel_efficiency")).To(BeNumerically("<", 98.2))
		Expect(m.Value("panel_efficiency")).To(BeNumerically(">", 90))

		settle()
		Expect(m.Value("panel_efficiency")).To(Equal(90.0))
		Expect(m.Value("energy_output")).To(Equal(1847.0))
	})
})
