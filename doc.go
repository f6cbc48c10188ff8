// Package challenge validates, normalizes and (de)serializes challenge
// documents: tabletop stat blocks whose free-text fields embed tokens such
// as {status-3} (see package token).
//
// Documents are exchanged as TOML. Import is a two-tier operation: malformed
// text and schema violations are hard failures, while suspicious but
// well-formed content is reported as warnings next to the usable document.
//
// Example:
//
//	res, err := challenge.Import(data)
//	if err != nil {
//		var ve *challenge.ValidationError
//		if errors.As(err, &ve) {
//			for _, issue := range ve.Issues {
//				fmt.Println(issue)
//			}
//		}
//		return err
//	}
//	for _, w := range res.Warnings {
//		fmt.Println("warning:", w)
//	}
//	out, err := challenge.Export(res.Challenge)
//
// Validate is the single entry point of the schema: it accepts decoded TOML
// as well as typed documents and always returns a fully normalized document
// or a *ValidationError listing every offending field.
package challenge
