package domain

import "time"

type SpecializedType string

const (
	SpecializedTypeSeries SpecializedType = "SERIES"
)

//Dataset is the stored form of a dataset registration
type Dataset struct {
	ID              string          `yaml:"id" bson:"_id"`
	CatalogID       string          `yaml:"catalogId" bson:"catalogId"`
	LastModified    *time.Time      `yaml:"lastModified" bson:"lastModified,omitempty"`
	OriginalURI     string          `yaml:"originalUri" bson:"originalUri,omitempty"`
	URI             string          `yaml:"uri" bson:"uri,omitempty"`
	SpecializedType SpecializedType `yaml:"specializedType" bson:"specializedType,omitempty"`
	Published       bool            `yaml:"published" bson:"published"`
	Approved        bool            `yaml:"approved" bson:"approved"`

	Title         *LocalizedStrings     `yaml:"title" bson:"title,omitempty"`
	Description   *LocalizedStrings     `yaml:"description" bson:"description,omitempty"`
	ContactPoints []ContactPoint        `yaml:"contactPoints" bson:"contactPoints,omitempty"`
	Keywords      *LocalizedStringLists `yaml:"keywords" bson:"keywords,omitempty"`
	Issued        *Date                 `yaml:"issued" bson:"issued,omitempty"`
	Modified      *Date                 `yaml:"modified" bson:"modified,omitempty"`
	Language      []string              `yaml:"language" bson:"language,omitempty"`
	LandingPage   []string              `yaml:"landingPage" bson:"landingPage,omitempty"`

	EuDataTheme []string `yaml:"euDataTheme" bson:"euDataTheme,omitempty"`
	LosTheme    []string `yaml:"losTheme" bson:"losTheme,omitempty"`
	//Theme is the legacy unified theme list, see SplitThemes
	Theme []string `yaml:"theme" bson:"theme,omitempty"`

	Distribution []Distribution `yaml:"distribution" bson:"distribution,omitempty"`
	Sample       []Distribution `yaml:"sample" bson:"sample,omitempty"`
	Temporal     []PeriodOfTime `yaml:"temporal" bson:"temporal,omitempty"`
	Spatial      []string       `yaml:"spatial" bson:"spatial,omitempty"`
	AccessRight  string         `yaml:"accessRight" bson:"accessRight,omitempty"`

	LegalBasisForRestriction []UriWithLabel `yaml:"legalBasisForRestriction" bson:"legalBasisForRestriction,omitempty"`
	LegalBasisForProcessing  []UriWithLabel `yaml:"legalBasisForProcessing" bson:"legalBasisForProcessing,omitempty"`
	LegalBasisForAccess      []UriWithLabel `yaml:"legalBasisForAccess" bson:"legalBasisForAccess,omitempty"`

	Accuracy     *QualityAnnotation `yaml:"accuracy" bson:"accuracy,omitempty"`
	Completeness *QualityAnnotation `yaml:"completeness" bson:"completeness,omitempty"`
	Currentness  *QualityAnnotation `yaml:"currentness" bson:"currentness,omitempty"`
	Availability *QualityAnnotation `yaml:"availability" bson:"availability,omitempty"`
	Relevance    *QualityAnnotation `yaml:"relevance" bson:"relevance,omitempty"`

	References       []Reference    `yaml:"references" bson:"references,omitempty"`
	RelatedResources []UriWithLabel `yaml:"relatedResources" bson:"relatedResources,omitempty"`
	Provenance       string         `yaml:"provenance" bson:"provenance,omitempty"`
	Frequency        string         `yaml:"frequency" bson:"frequency,omitempty"`
	ConformsTo       []UriWithLabel `yaml:"conformsTo" bson:"conformsTo,omitempty"`

	InformationModelsFromOtherSources []UriWithLabel `yaml:"informationModelsFromOtherSources" bson:"informationModelsFromOtherSources,omitempty"`
	InformationModelsFromFDK          []string       `yaml:"informationModelsFromFDK" bson:"informationModelsFromFDK,omitempty"`

	QualifiedAttributions []string `yaml:"qualifiedAttributions" bson:"qualifiedAttributions,omitempty"`
	Type                  string   `yaml:"type" bson:"type,omitempty"`

	InSeries           string         `yaml:"inSeries" bson:"inSeries,omitempty"`
	SeriesDatasetOrder map[string]int `yaml:"seriesDatasetOrder" bson:"seriesDatasetOrder,omitempty"`
}

func (d Dataset) IsSeries() bool {
	return d.SpecializedType == SpecializedTypeSeries
}

//Themes returns the los and eu themes as one list, los themes first
func (d Dataset) Themes() []string {
	themes := make([]string, 0, len(d.LosTheme)+len(d.EuDataTheme))
	themes = append(themes, d.LosTheme...)
	return append(themes, d.EuDataTheme...)
}

type ContactPoint struct {
	Name  *LocalizedStrings `yaml:"name" bson:"name,omitempty"`
	Email string            `yaml:"email" bson:"email,omitempty"`
	URL   string            `yaml:"url" bson:"url,omitempty"`
	Phone string            `yaml:"phone" bson:"phone,omitempty"`
}

type Distribution struct {
	Title          *LocalizedStrings `yaml:"title" bson:"title,omitempty"`
	Description    *LocalizedStrings `yaml:"description" bson:"description,omitempty"`
	DownloadURL    []string          `yaml:"downloadURL" bson:"downloadURL,omitempty"`
	AccessURL      []string          `yaml:"accessURL" bson:"accessURL,omitempty"`
	License        string            `yaml:"license" bson:"license,omitempty"`
	ConformsTo     []UriWithLabel    `yaml:"conformsTo" bson:"conformsTo,omitempty"`
	Page           []string          `yaml:"page" bson:"page,omitempty"`
	Format         []string          `yaml:"format" bson:"format,omitempty"`
	MediaType      []string          `yaml:"mediaType" bson:"mediaType,omitempty"`
	AccessServices []string          `yaml:"accessServices" bson:"accessServices,omitempty"`
}

type PeriodOfTime struct {
	StartDate *Date `yaml:"startDate" bson:"startDate,omitempty"`
	EndDate   *Date `yaml:"endDate" bson:"endDate,omitempty"`
}

type QualityAnnotation struct {
	MotivatedBy string            `yaml:"motivatedBy" bson:"motivatedBy,omitempty"`
	HasBody     map[string]string `yaml:"hasBody" bson:"hasBody,omitempty"`
}

type Reference struct {
	ReferenceType string `yaml:"referenceType" bson:"referenceType,omitempty"`
	Source        string `yaml:"source" bson:"source,omitempty"`
}

type UriWithLabel struct {
	URI       string            `yaml:"uri" bson:"uri,omitempty"`
	PrefLabel map[string]string `yaml:"prefLabel" bson:"prefLabel,omitempty"`
}

//LocalizedStrings holds one optional value per supported language. An empty
//string means the language is absent.
type LocalizedStrings struct {
	NB string `yaml:"nb" bson:"nb,omitempty"`
	NN string `yaml:"nn" bson:"nn,omitempty"`
	EN string `yaml:"en" bson:"en,omitempty"`
}

type LocalizedStringLists struct {
	NB []string `yaml:"nb" bson:"nb,omitempty"`
	NN []string `yaml:"nn" bson:"nn,omitempty"`
	EN []string `yaml:"en" bson:"en,omitempty"`
}
