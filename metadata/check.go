// seehuhn.de/go/pdfdoc - build layered PDF documents in memory
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package metadata

// Violation describes one way in which a document fails to meet its
// conformance level.
type Violation struct {
	Code        string
	Description string
	Location    string
}

func (v Violation) String() string {
	s := v.Code + ": " + v.Description
	if v.Location != "" {
		s += " (" + v.Location + ")"
	}
	return s
}

// Violation codes used by [Check] and by the document checks built on it.
const (
	CodeMissingICCProfile = "ICC-PROFILE"
	CodeMissingTitle      = "TITLE"
	CodeMissingDocumentID = "DOCUMENT-ID"
	CodeFontNotEmbedded   = "FONT-EMBEDDING"
	CodeFontFormat        = "FONT-FORMAT"
	CodeEncryption        = "ENCRYPTION"
	CodeOptionalContent   = "OPTIONAL-CONTENT"
	CodeDateOrder         = "DATES"
	CodeTransparency      = "TRANSPARENCY"
)

// Check lists the metadata-related problems which prevent md from
// conforming to md.Conformance.  The result is nil if no problems are
// found.
func Check(md *Metadata) []Violation {
	var res []Violation
	c := md.Conformance

	if md.DocumentID == "" {
		res = append(res, Violation{
			Code:        CodeMissingDocumentID,
			Description: "the document ID is empty",
		})
	}
	if !md.CreationDate.IsZero() && !md.ModificationDate.IsZero() &&
		md.ModificationDate.Before(md.CreationDate) {
		res = append(res, Violation{
			Code:        CodeDateOrder,
			Description: "the modification date is before the creation date",
		})
	}

	if c == None {
		return res
	}

	if c.RequiresICCProfile() && md.ICCProfile == nil {
		res = append(res, Violation{
			Code:        CodeMissingICCProfile,
			Description: c.String() + " requires an output intent with an ICC profile",
			Location:    "/OutputIntents",
		})
	}
	if c.RequiresTitle() && md.Title == "" {
		res = append(res, Violation{
			Code:        CodeMissingTitle,
			Description: c.String() + " requires a document title",
			Location:    "/Info",
		})
	}
	return res
}
