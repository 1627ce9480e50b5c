// Package model defines domain models for contract building and deployment.
package model

// FeatureID identifies a bundle of contract capability selectable in the builder.
type FeatureID string

var (
	Loyalty      FeatureID = "loyalty"
	Certificates FeatureID = "certificates"
	Governance   FeatureID = "governance"
	Marketplace  FeatureID = "marketplace"
)

// Category groups features in the builder UI.
type Category string

var (
	CategoryRetail    Category = "retail"
	CategoryEducation Category = "education"
	CategoryDAO       Category = "dao"
	CategoryEcommerce Category = "ecommerce"
	CategoryConstruct Category = "construction"
)

// Feature is a named collection of block descriptors.
type Feature struct {
	ID          FeatureID
	Name        string
	Description string
	Category    Category
	Blocks      []BlockDescriptor
}
