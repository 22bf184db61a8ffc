package vocabulary

import (
	"testing"

	"github.com/matryer/is"
)

func TestResolveQualityDimensionAcceptsShortAndFullForm(t *testing.T) {
	is := is.New(t)

	short, ok := ResolveQualityDimension("iso:Accuracy")
	is.True(ok) // iso:Accuracy should resolve

	full, ok := ResolveQualityDimension("http://iso.org/25012/2008/dataquality/Accuracy")
	is.True(ok) // the full accuracy IRI should resolve

	is.Equal(short, full)
	is.Equal(short, Accuracy)
}

func TestResolveQualityDimensionKnowsAllFiveDimensions(t *testing.T) {
	is := is.New(t)

	for _, name := range []string{"Accuracy", "Availability", "Completeness", "Currentness", "Relevance"} {
		d, ok := ResolveQualityDimension("iso:" + name)
		is.True(ok)                   // dimension should resolve
		is.Equal(string(d), ISO+name) // dimension should be in the iso namespace
	}
}

func TestResolveQualityDimensionRejectsUnknownNames(t *testing.T) {
	is := is.New(t)

	for _, name := range []string{"iso:Bogus", "", "Accuracy", "http://example.com/Accuracy"} {
		_, ok := ResolveQualityDimension(name)
		is.True(!ok) // unknown dimension should not resolve
	}
}

func TestLanguageIRI(t *testing.T) {
	is := is.New(t)

	is.Equal(string(LanguageIRI("nor")), EULanguagePrefix+"NOR")
	is.Equal(string(LanguageIRI(EULanguagePrefix+"ENG")), EULanguagePrefix+"ENG")
	is.Equal(LanguageCode(EULanguagePrefix+"ENG"), "ENG")
}

func TestNamespacesAreACopy(t *testing.T) {
	is := is.New(t)

	ns := Namespaces()
	ns[0].Prefix = "changed:"

	is.Equal(Namespaces()[0].Prefix, "adms:") // default prefix table must not be mutable
}
