package csscolor

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parseCase struct {
	input string
	want  string
}

func runParseCases(t *testing.T, opts Options, tests []parseCase) {
	t.Helper()
	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := p.Parse(tt.input, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.ToHexNumberString())
		})
	}
}

func runInvalidCases(t *testing.T, inputs []string) {
	t.Helper()
	p := NewParser()
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := p.Parse(input, Options{})
			assert.ErrorIs(t, err, ErrInvalidColor)
		})
	}
}

func TestParseNamed(t *testing.T) {
	runParseCases(t, Options{}, []parseCase{
		{"deepSkyBlue", "0xFF00BFFF"},
		{"DEEPSKYBLUE", "0xFF00BFFF"},
		{"red", "0xFFFF0000"},
		{"transparent", "0x00000000"},
		{"rebeccapurple", "0xFF663399"},
		{"  white  ", "0xFFFFFFFF"},
	})
}

func TestParseHex(t *testing.T) {
	runParseCases(t, Options{}, []parseCase{
		{"#F71", "0xFFFF7711"},
		{"#f71", "0xFFFF7711"},
		{"#F718", "0x88FF7711"},
		{"#8F9A1E", "0xFF8F9A1E"},
		{"#8F9A1E99", "0x998F9A1E"},
		{"#abce", "0xEEAABBCC"},
	})
}

func TestParseHexInvalid(t *testing.T) {
	runInvalidCases(t, []string{
		"#abcef", "#", "#1", "#F1", "#F1981", "#X14597", "#1X4597",
		"#1234567", "#123456789", "#1234567P", "# 123",
	})
}

func TestParseRGB(t *testing.T) {
	runParseCases(t, Options{}, []parseCase{
		{"rgb(12, 34, 56)", "0xFF0C2238"},
		{"rgb(100 200 255 / 0.23)", "0x3B64C8FF"},
		{"rgb(100 200 255 / 23%)", "0x3B64C8FF"},
		{"rgb(100, 200, 255, 23%)", "0x3B64C8FF"},
		{"rgba(100, 200, 255, 0.23)", "0x3B64C8FF"},
		{"RGB(100 200 255 / 0.23)", "0x3B64C8FF"},
		{"rgb(50% 50% 50% / 50%)", "0x80808080"},
		{"rgba(123, 45, 67 / 0.5)", "0x807B2D43"},
		{"rgb(100 200, 255)", "0xFF64C8FF"},
		{"rgb(  100   200   255  )", "0xFF64C8FF"},
		{"rgb(none 300 -20)", "0xFF00FF00"},
		{"rgb(0.2 0.5 254.1)", "0xFF0101FF"},
		{"rgb(0 0 0 / 2)", "0xFF000000"},
		{"rgb(0 0 0 / none)", "0x00000000"},
	})
}

func TestParseRGBInvalid(t *testing.T) {
	runInvalidCases(t, []string{
		"rgb(100 200, 255 / 23%)",
		"rgb(100, 200, 255, 23%, 100)",
		"rgb(100, 200)",
		"rgb(100 200 255 / 23%",
		"rgb(100 200 255 23%)",
		"rgb(100 200 255 / 0.5 / 0.5)",
		"rgb(100 200 abc)",
		"rgb (100 200 255)",
		"rgb()",
	})
}

func TestParseHSL(t *testing.T) {
	runParseCases(t, Options{}, []parseCase{
		{"hsl(100 50% 40%)", "0xFF559933"},
		{"hsl(100deg 50% 40%)", "0xFF559933"},
		{"hsl(100 50 40)", "0xFF559933"},
		{"hsl(100 50% 40% / 0.23)", "0x3B559933"},
		{"hsl(100 50% 40% / 23%)", "0x3B559933"},
		{"hsl(100grad 50% 40%)", "0xFF669933"},
		{"hsl(100rad 50% 40%)", "0xFF993367"},
		{"hsl(1.3turn 50% 40%)", "0xFF479933"},
		{"hsl(none 50% 40%)", "0xFF993333"},
		{"hsl(100 none 40%)", "0xFF666666"},
		{"hsl(100 50% none)", "0xFF000000"},
		{"hsla(50deg, 99%, 53%, 60%)", "0x99FED610"},
		{"hsl(54 100% 55% / 60%)", "0x99FFE81A"},
		{"hsl(0.3turn 45% 50% / 0.5)", "0x805DB946"},
		{"hsla(0.3turn 45%, 50%, 0.5)", "0x805DB946"},
		{"hsl(none none none / none)", "0x00000000"},
	})
}

func TestParseHSLInvalid(t *testing.T) {
	runInvalidCases(t, []string{
		"hsla(0.3turn, 45% 50%, 50%)",
		"hsl(100 50%, 40% / 23%)",
		"hsl(100, 50%, 40%, 23%, 1)",
		"hsl(100, 50%)",
		"hsl(100 50% 40% / 23%",
		"hsl(100 50% 40% 23%)",
		"hsl(100px 50% 40%)",
	})
}

func TestParseHWB(t *testing.T) {
	runParseCases(t, Options{}, []parseCase{
		{"hwb(100deg 50% 40%)", "0xFF889980"},
		{"hwb(100grad 50% 40%)", "0xFF8C9980"},
		{"hwb(100rad 50% 40%)", "0xFF99808C"},
		{"hwb(1.3turn 50% 40%)", "0xFF859980"},
		{"hwb(none 50% 40%)", "0xFF998080"},
		{"hwb(100deg none 40%)", "0xFF339900"},
		{"hwb(100deg 50% none)", "0xFFAAFF80"},
		{"hwb(none none none / none)", "0x00FF0000"},
	})
}

func TestParseHWBInvalid(t *testing.T) {
	runInvalidCases(t, []string{
		"hwb(100 50%, 40% / 23%)",
		"hwb(100, 50%, 40%, 23%, 1)",
		"hwb(100, 50%)",
		"hwb(100 50% 40% / 23%",
		"hwb(100 50% 40% 23%)",
	})
}

func TestParseLabFamily(t *testing.T) {
	runParseCases(t, Options{}, []parseCase{
		{"oklab(0.3 0.7 -0.4)", "0xFFC000DD"},
		{"oklab(0.3 none 0.4 / 60%)", "0x99710000"},
		{"oklab(0.3 0.7 none / 60%)", "0x99E1001F"},
		{"oklab(1 0 0)", "0xFFFFFFFF"},
		{"oklab(78% -0.2 -0.1 / 135%)", "0xFF00DBFE"},
		{"oklab(none 0.7 0.4 / 60%)", "0x996E0900"},
		// Green is 231.47, so round half up gives E7 rather than the E8 that
		// rounding every channel up would give.
		{"oklab(0.92 -0.04 0.19 / 0.6)", "0x99FFE700"},
		{"oklch(1 0 0)", "0xFFFFFFFF"},
		{"oklch(0.7 0.1 200)", "0xFF40B1B7"},
		{"oklch(70% 25% 200deg)", "0xFF40B1B7"},
		{"oklch(0.628 0.2577 29.23)", "0xFFFF0000"},
		{"lab(100 0 0)", "0xFFFFFFFF"},
		{"lab(50 20 -30)", "0xFF856CAA"},
		{"lab(50% 16% -24%)", "0xFF856CAA"},
		{"lch(100 0 0)", "0xFFFFFFFF"},
		{"lch(50 30 270)", "0xFF5D78AA"},
	})
}

func TestParseLabFamilyInvalid(t *testing.T) {
	runInvalidCases(t, []string{
		"oklab(0.3 0.7, -0.4 / 23%)",
		"oklab(0.3, 0.7, -0.4)",
		"oklab(0.3 0.7)",
		"oklab(0.3 0.7 -0.4 / 23%",
		"oklab(0.3 0.7 -0.4 23%)",
		"oklch(0.7 0.1 200px)",
		"lab(50 20)",
		"lch(50 30 270 / 1 / 1)",
	})
}

func TestParseLightDark(t *testing.T) {
	runParseCases(t, Options{}, []parseCase{
		{"light-dark(white, black)", "0xFFFFFFFF"},
		{"light-dark(rgb(1 2 3), not-a-color)", "0xFF010203"},
		{"light-dark(light-dark(red, blue), black)", "0xFFFF0000"},
	})
	runParseCases(t, Options{Mode: Dark}, []parseCase{
		{"light-dark(white, black)", "0xFF000000"},
		{"LIGHT-DARK(white, #123)", "0xFF112233"},
		// The nested expression is resolved in light mode.
		{"light-dark(white, light-dark(red, blue))", "0xFFFF0000"},
	})
	runInvalidCases(t, []string{
		"light-dark(white)",
		"light-dark(white, black, red)",
		"light-dark(nope, black)",
		"light-dark(white, black",
	})
}

func TestParseOptionsUnusedOutsideLightDark(t *testing.T) {
	light, err := Parse("hsl(100 50% 40%)", Options{Mode: Light})
	require.NoError(t, err)
	dark, err := Parse("hsl(100 50% 40%)", Options{Mode: Dark})
	require.NoError(t, err)
	assert.Equal(t, light, dark)
}

func TestParseIdempotent(t *testing.T) {
	inputs := []string{
		"deepskyblue", "#8F9A1E99", "hsl(100 50% 40% / 0.23)",
		"color-mix(in oklch, plum, #f005)", "color(display-p3 0.1 0.5 0.8)",
	}
	for _, input := range inputs {
		c, err := Parse(input, Options{})
		require.NoError(t, err, input)

		again, err := Parse(input, Options{})
		require.NoError(t, err, input)
		assert.Equal(t, c, again, input)

		fromHex, err := Parse(c.ToHexColorString(), Options{})
		require.NoError(t, err, input)
		assert.Equal(t, c, fromHex, input)
	}
}

func TestParseRejectsEmptyAndUnknown(t *testing.T) {
	runInvalidCases(t, []string{"", "   ", "notacolor", "url(#x)", "rgb", "()"})
}

func TestParserGrammarOrder(t *testing.T) {
	want := []string{
		"named", "hex", "rgb", "hsl", "hwb", "light-dark",
		"oklab", "oklch", "lab", "lch", "color", "color-mix",
	}
	assert.Equal(t, want, NewParser().Grammars())
}

func TestParserLogsRejections(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := NewParser(WithLogger(logger))

	_, err := p.Parse("rgb(1 2)", Options{})
	require.ErrorIs(t, err, ErrInvalidColor)
	assert.Contains(t, buf.String(), "grammar=rgb")
	// Grammars that do not recognise the function at all stay silent.
	assert.NotContains(t, buf.String(), "grammar=hsl")
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, "0xFF00BFFF", MustParse("deepskyblue").ToHexNumberString())
	assert.Panics(t, func() { MustParse("rgb(") })
}

func TestParseMode(t *testing.T) {
	m, ok := ParseMode("DARK")
	assert.True(t, ok)
	assert.Equal(t, Dark, m)
	assert.Equal(t, "dark", m.String())

	m, ok = ParseMode("")
	assert.True(t, ok)
	assert.Equal(t, Light, m)

	_, ok = ParseMode("dim")
	assert.False(t, ok)
}
