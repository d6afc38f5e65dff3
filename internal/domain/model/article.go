package model

// Article is a single headline returned by the news provider. The pipeline
// reads it to build the script prompt and discards it afterwards.
type Article struct {
	Title       string
	Description string
	Source      string
	URL         string
	PublishedAt string
}
