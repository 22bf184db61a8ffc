package domain

import "strings"

const (
	LosThemePrefix    string = "https://psi.norge.no/los/"
	EuDataThemePrefix string = "http://publications.europa.eu/resource/authority/data-theme/"
)

//SplitThemes classifies a unified theme list into los and eu themes by prefix.
//URIs matching neither prefix are left out of both.
func SplitThemes(themes []string) (los []string, eu []string) {
	for _, t := range themes {
		switch {
		case strings.HasPrefix(t, LosThemePrefix):
			los = append(los, t)
		case strings.HasPrefix(t, EuDataThemePrefix):
			eu = append(eu, t)
		}
	}
	return
}

//NormalizeThemes derives the los and eu theme sets from the legacy theme
//list when neither set has been stored. The legacy list is kept as is.
func (d *Dataset) NormalizeThemes() {
	if len(d.LosTheme) > 0 || len(d.EuDataTheme) > 0 || len(d.Theme) == 0 {
		return
	}
	d.LosTheme, d.EuDataTheme = SplitThemes(d.Theme)
}
