package viz

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/neurospark/internal/fleet"
)

var _ = Describe("Themes", func() {
	It("lists the built-in themes with ocean first", func() {
		Expect(ThemeNames()).To(Equal([]string{"ocean", "solar", "panel", "console", "dawn"}))
	})

	It("falls back to ocean for unknown names", func() {
		Expect(GetTheme("dawn").Name).To(Equal("dawn"))
		Expect(GetTheme("neon").Name).To(Equal("ocean"))
	})

	It("rejects unknown themes in SetTheme", func() {
		prev := CurrentTheme
		DeferCleanup(func() { CurrentTheme = prev })

		Expect(SetTheme("panel")).To(Succeed())
		Expect(CurrentTheme.Name).To(Equal("panel"))
		Expect(SetTheme("neon")).To(MatchError(ErrUnknownTheme))
		Expect(CurrentTheme.Name).To(Equal("panel"))
	})

	It("cycles through every theme and wraps", func() {
		t := ThemeOcean
		for range Themes {
			t = NextTheme(t)
		}
		Expect(t.Name).To(Equal("ocean"))
		Expect(NextTheme(ThemeDawn).Name).To(Equal("ocean"))
	})
})

var _ = Describe("Styles", func() {
	s := NewStyles(ThemeOcean)

	DescribeTable("robot status colors",
		func(status fleet.Status, want any) {
			Expect(s.Status(status).GetForeground()).To(Equal(want))
		},
		Entry("active", fleet.StatusActive, ThemeOcean.Success),
		Entry("charging", fleet.StatusCharging, ThemeOcean.Primary),
		Entry("idle", fleet.StatusIdle, ThemeOcean.Muted),
		Entry("unknown", fleet.Status("broken"), ThemeOcean.Muted),
	)

	DescribeTable("alert severity colors",
		func(sev fleet.Severity, want any) {
			Expect(s.Severity(sev).GetForeground()).To(Equal(want))
		},
		Entry("high", fleet.SeverityHigh, ThemeOcean.Error),
		Entry("medium", fleet.SeverityMedium, ThemeOcean.Warning),
		Entry("low", fleet.SeverityLow, ThemeOcean.Primary),
		Entry("unknown", fleet.Severity("urgent"), ThemeOcean.Muted),
	)

	It("draws the help line in the key hint style", func() {
		h := s.HelpStyles()
		Expect(h.ShortDesc.GetForeground()).To(Equal(ThemeOcean.Muted))
		Expect(h.ShortDesc.GetItalic()).To(BeTrue())
		Expect(h.ShortKey.GetBold()).To(BeTrue())
		Expect(h.FullDesc.GetForeground()).To(Equal(ThemeOcean.Muted))
	})

	It("gives unknown values a neutral icon", func() {
		Expect(SeverityIcon("urgent")).To(Equal("·"))
		Expect(StatusIcon("broken")).To(Equal("·"))
		Expect(StatusIcon(fleet.StatusActive)).To(Equal("●"))
	})

	It("clamps bars to their width", func() {
		Expect(s.Bar(150, 100, 10)).To(Equal("██████████"))
		Expect(s.Bar(0, 100, 4)).To(Equal("░░░░"))
		Expect(s.Bar(1, 0, 4)).To(BeEmpty())
	})

	It("renders gradient text rune by rune", func() {
		Expect(GradientText("", "#000000", "#ffffff")).To(BeEmpty())
		Expect(GradientText("→ok", "#000000", "#ffffff")).To(ContainSubstring("→"))
	})
})

var _ = Describe("viewportWatcher", func() {
	It("reports a region visible when any line is on screen", func() {
		w := newViewportWatcher()
		w.place("metrics", 40, 48)

		w.update(0, 40)
		Expect(w.Visible("metrics")).To(BeFalse())

		w.update(1, 40)
		Expect(w.Visible("metrics")).To(BeTrue())

		w.update(48, 10)
		Expect(w.Visible("metrics")).To(BeFalse())

		w.update(47, 10)
		Expect(w.Visible("metrics")).To(BeTrue())
	})

	It("fires registered callbacks on entry", func() {
		w := newViewportWatcher()
		w.place("metrics", 10, 12)
		fired := 0
		w.OnBecomeVisible("metrics", func() { fired++ })

		w.update(0, 5)
		w.update(8, 5)
		w.update(9, 5)
		w.update(0, 5)
		w.update(10, 5)
		Expect(fired).To(Equal(2))
	})
})
