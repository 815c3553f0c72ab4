// SPDX-License-Identifier: MIT
// Package: woc/builder
//
// impl_florentine.go - Padgett's Florentine families marriage network.
//
// Contract:
//   - 15 families joined by 20 marriage ties, emitted in the fixed order of
//     florentineMarriages. IDs are family names; cfg.idFn is not consulted.
//   - Directed graphs receive both directions of every tie.
//   - withPucci adds the isolated Pucci family (16 vertices total).
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//
// Complexity:
//   - Time: O(1) (fixed size).

package builder

import (
	"fmt"

	"github.com/katalvlaran/woc/core"
)

const methodFlorentine = "FlorentineFamilies"

// Family names used as vertex IDs.
const (
	FamilyAcciaiuoli   = "Acciaiuoli"
	FamilyAlbizzi      = "Albizzi"
	FamilyBarbadori    = "Barbadori"
	FamilyBischeri     = "Bischeri"
	FamilyCastellani   = "Castellani"
	FamilyGinori       = "Ginori"
	FamilyGuadagni     = "Guadagni"
	FamilyLamberteschi = "Lamberteschi"
	FamilyMedici       = "Medici"
	FamilyPazzi        = "Pazzi"
	FamilyPeruzzi      = "Peruzzi"
	FamilyPucci        = "Pucci"
	FamilyRidolfi      = "Ridolfi"
	FamilySalviati     = "Salviati"
	FamilyStrozzi      = "Strozzi"
	FamilyTornabuoni   = "Tornabuoni"
)

// florentineMarriages lists the marriage ties in emission order.
var florentineMarriages = [][2]string{
	{FamilyAcciaiuoli, FamilyMedici},
	{FamilyCastellani, FamilyPeruzzi},
	{FamilyCastellani, FamilyStrozzi},
	{FamilyCastellani, FamilyBarbadori},
	{FamilyMedici, FamilyBarbadori},
	{FamilyMedici, FamilyRidolfi},
	{FamilyMedici, FamilyTornabuoni},
	{FamilyMedici, FamilyAlbizzi},
	{FamilyMedici, FamilySalviati},
	{FamilySalviati, FamilyPazzi},
	{FamilyPeruzzi, FamilyStrozzi},
	{FamilyPeruzzi, FamilyBischeri},
	{FamilyStrozzi, FamilyRidolfi},
	{FamilyStrozzi, FamilyBischeri},
	{FamilyRidolfi, FamilyTornabuoni},
	{FamilyTornabuoni, FamilyGuadagni},
	{FamilyAlbizzi, FamilyGinori},
	{FamilyAlbizzi, FamilyGuadagni},
	{FamilyBischeri, FamilyGuadagni},
	{FamilyGuadagni, FamilyLamberteschi},
}

// FlorentineMarriageCount is the number of ties FlorentineFamilies emits (per direction).
const FlorentineMarriageCount = 20

// FlorentineFamilies returns a Constructor for the Florentine marriage network.
func FlorentineFamilies(withPucci bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, tie := range florentineMarriages {
			if err := addEdge(g, cfg, methodFlorentine, tie[0], tie[1], true); err != nil {
				return err
			}
		}
		if withPucci {
			if err := g.AddVertex(FamilyPucci); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodFlorentine, FamilyPucci, err)
			}
		}

		return nil
	}
}
