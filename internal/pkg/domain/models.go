package domain

//Catalog is a stored dataset catalog. Datasets belong to a catalog by their
//CatalogID and are only embedded here as stubs.
type Catalog struct {
	ID              string            `yaml:"id" bson:"_id"`
	URI             string            `yaml:"uri" bson:"uri,omitempty"`
	Title           map[string]string `yaml:"title" bson:"title,omitempty"`
	Description     map[string]string `yaml:"description" bson:"description,omitempty"`
	Publisher       *Publisher        `yaml:"publisher" bson:"publisher,omitempty"`
	Issued          *Date             `yaml:"issued" bson:"issued,omitempty"`
	Modified        *Date             `yaml:"modified" bson:"modified,omitempty"`
	Language        string            `yaml:"language" bson:"language,omitempty"`
	ThemeTaxonomies []string          `yaml:"themeTaxonomy" bson:"themeTaxonomy,omitempty"`
	Dataset         []DatasetStub     `yaml:"dataset" bson:"dataset,omitempty"`
}

//DatasetStub is a dataset reference embedded directly in a catalog record
type DatasetStub struct {
	ID          string `yaml:"id" bson:"id,omitempty"`
	URI         string `yaml:"uri" bson:"uri,omitempty"`
	OriginalURI string `yaml:"originalUri" bson:"originalUri,omitempty"`
}

//Publisher is the agent responsible for a catalog or dataset
type Publisher struct {
	URI       string            `yaml:"uri" bson:"uri,omitempty"`
	ID        string            `yaml:"id" bson:"id,omitempty"`
	Name      string            `yaml:"name" bson:"name,omitempty"`
	OrgPath   string            `yaml:"orgPath" bson:"orgPath,omitempty"`
	PrefLabel map[string]string `yaml:"prefLabel" bson:"prefLabel,omitempty"`
}

//CatalogCount holds the number of datasets registered in a catalog
type CatalogCount struct {
	ID           string `bson:"_id"`
	DatasetCount int64  `bson:"datasetCount"`
}

//Organisation is an entry in the organisation registry
type Organisation struct {
	ID   string `yaml:"id" json:"organizationId"`
	Name string `yaml:"name" json:"name"`
}
