/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package description_test

import (
	"fmt"
	"strings"

	"github.com/voedger/mdschema/pkg/metadata"
	"github.com/voedger/mdschema/pkg/metadata/description"
)

func ExampleBuilder() {
	ns := metadata.MustParseNamespace("https://dataverse.org/schema/citation/", "citation")

	// how to build compound field
	author, err := description.NewBuilder().
		WithNamespacedID(ns, "author").
		WithType(description.FieldType_Compound).
		WithDisplayName("Author").
		WithChildren(
			description.NewBuilder().
				WithNamespacedID(ns, "authorName").
				WithType(description.FieldType_Text).
				WithWatermark("FamilyName, GivenName or Organization"),
			description.NewBuilder().
				WithNamespacedID(ns, "authorAffiliation").
				WithType(description.FieldType_Text),
		).
		Build()
	if err != nil {
		panic(err)
	}

	// how to inspect field tree
	author.Walk(func(f *description.Field) bool {
		fmt.Printf("%s%s %s\n", strings.Repeat("  ", f.Generation()), f.ID().CompactIRI(), f.Type().TrimString())
		return true
	})

	// Output:
	// citation:author Compound
	//   citation:authorName Text
	//   citation:authorAffiliation Text
}
