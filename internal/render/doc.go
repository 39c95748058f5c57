// Package render turns protocol values into terminal output.
//
// Quaternions are shown as their [w, xi, yj, zk] text next to the unit
// direction of their vector part, the arrow a 3D view would draw; the scalar
// w has no spatial rendering. Verdicts and labels are styled with lipgloss.
// Output should be written through a colorprofile writer so styling is
// dropped on terminals that cannot show it.
package render
