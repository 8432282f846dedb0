// Package metrics measures single-line text for plot layout.
//
// Service answers layout questions (how wide is this label, how much margin
// does the widest tick label need) without rendering anything. Measure is
// the rule set behind every answer; package glyph uses the same function, so
// a rendered label never disagrees with the numbers layout was computed from.
//
// Two widths exist and are intentionally different:
//
//   - Metrics.Width (Service.AdvanceWidth) is ceil(advance) plus ceil of any
//     negative first/last bearing, so the box never clips overhanging ink.
//   - glyph.Renderer sizes itself to ceil(advance) only.
//
// Single-string ink queries are unrounded. Reductions over numeric label
// sets (MaxInkRight, MinInkLeft, MaxInkWidth) are ceiling-rounded.
package metrics
