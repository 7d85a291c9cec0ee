package viz

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Landing", func() {
	var (
		clock *clockwork.FakeClock
		m     Landing
	)

	update := func(msg tea.Msg) tea.Cmd {
		next, cmd := m.Update(msg)
		m = next.(Landing)
		return cmd
	}

	scrollToMetrics := func() {
		for i := 0; i < 40 && !m.RevealStarted(); i++ {
			update(keyMsg("pgdown"))
		}
		Expect(m.RevealStarted()).To(BeTrue())
	}

	finishReveal := func() {
		for i := 0; i < 100 && m.loop.queue.Len() > 0; i++ {
			next, _ := frame(m, m.loop, clock)
			m = next.(Landing)
		}
		Expect(m.loop.queue.Len()).To(BeZero())
	}

	BeforeEach(func() {
		clock = clockwork.NewFakeClock()
		m = NewLanding(testOptions(clock))
		update(tea.WindowSizeMsg{Width: 100, Height: 20})
	})

	AfterEach(func() {
		m.Close()
	})

	It("waits for the metrics panel to scroll into view", func() {
		Expect(m.RevealStarted()).To(BeFalse())
		Expect(m.Metric("efficiency")).To(Equal(0.0))
		Expect(m.Scrolled()).To(BeFalse())
		Expect(m.loop.queue.Len()).To(BeZero())
	})

	It("restyles the nav bar past the scroll threshold", func() {
		update(keyMsg("j"))
		Expect(m.Scrolled()).To(BeFalse())

		update(keyMsg("pgdown"))
		Expect(m.Scrolled()).To(BeTrue())

		update(keyMsg("pgup"))
		Expect(m.Scrolled()).To(BeFalse())
	})

	It("reveals every metric once it is visible", func() {
		scrollToMetrics()
		Expect(m.Metric("efficiency")).To(Equal(0.0))
		Expect(m.loop.queue.Len()).To(Equal(1))

		next, _ := frame(m, m.loop, clock)
		m = next.(Landing)
		Expect(m.Metric("efficiency")).To(BeNumerically(">", 0))
		Expect(m.Metric("efficiency")).To(BeNumerically("<", 34))

		finishReveal()
		Expect(m.Metric("efficiency")).To(Equal(34.0))
		Expect(m.Metric("waterSaved")).To(Equal(89.0))
		Expect(m.Metric("uptime")).To(Equal(99.8))
		Expect(m.Metric("fleetHealth")).To(Equal(98.0))
		page, _ := m.renderPage()
		Expect(page).To(ContainSubstring("99.8%"))
	})

	It("never restarts after scrolling away and back", func() {
		scrollToMetrics()
		finishReveal()
		offset := m.viewport.YOffset

		for range 40 {
			update(keyMsg("pgup"))
		}
		Expect(m.Scrolled()).To(BeFalse())
		Expect(m.watcher.Visible(m.region)).To(BeFalse())

		for i := 0; i < 40 && m.viewport.YOffset < offset; i++ {
			update(keyMsg("pgdown"))
		}
		Expect(m.watcher.Visible(m.region)).To(BeTrue())
		Expect(m.loop.queue.Len()).To(BeZero())
		Expect(m.Metric("efficiency")).To(Equal(34.0))
	})

	It("reveals immediately when the whole page fits", func() {
		update(tea.WindowSizeMsg{Width: 100, Height: 1000})
		Expect(m.RevealStarted()).To(BeTrue())
	})

	It("stops the reveal on close", func() {
		scrollToMetrics()
		m.Close()
		finishReveal()
		Expect(m.Metric("efficiency")).To(Equal(0.0))
	})

	It("opens the dashboard on d", func() {
		cmd := update(keyMsg("d"))
		Expect(run(cmd)).To(Equal(navigateMsg{to: routeDashboard}))
		Expect(m.Scrolled()).To(BeFalse())
	})
})
