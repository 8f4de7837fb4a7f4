package main

import (
	"github.com/velmara/gridforge/conngraph"
	"github.com/velmara/gridforge/geom"
	"github.com/velmara/gridforge/mapdef"
)

// demoDefinition is the built-in two-player skirmish map served when no
// -def file is given: high mains, mid naturals, an open center, a gold
// base behind rocks.
func demoDefinition() *mapdef.Definition {
	return &mapdef.Definition{
		ID: "demo2", Name: "Forge Demo", Width: 128, Height: 128,
		Biome:  mapdef.BiomeGrass,
		Border: 2,
		Regions: []mapdef.Region{
			{ID: "main1", Role: conngraph.RoleMain, Pos: geom.Point{X: 24, Y: 24}, Tier: 2, Radius: 14, OwnerSlot: 1, Resources: mapdef.TemplateStandard},
			{ID: "main2", Role: conngraph.RoleMain, Pos: geom.Point{X: 104, Y: 104}, Tier: 2, Radius: 14, OwnerSlot: 2, Resources: mapdef.TemplateStandard},
			{ID: "nat1", Role: conngraph.RoleNatural, Pos: geom.Point{X: 48, Y: 40}, Tier: 1, Radius: 11, Resources: mapdef.TemplateStandard},
			{ID: "nat2", Role: conngraph.RoleNatural, Pos: geom.Point{X: 80, Y: 88}, Tier: 1, Radius: 11, Resources: mapdef.TemplateStandard},
			{ID: "gold1", Role: conngraph.RoleGold, Pos: geom.Point{X: 100, Y: 28}, Tier: 0, Radius: 9, Resources: mapdef.TemplateGold},
			{ID: "gold2", Role: conngraph.RoleGold, Pos: geom.Point{X: 28, Y: 100}, Tier: 0, Radius: 9, Resources: mapdef.TemplateGold},
			{ID: "center", Role: conngraph.RoleCenter, Pos: geom.Point{X: 64, Y: 64}, Tier: 0, Radius: 12},
			{ID: "tower1", Role: conngraph.RoleWatchtower, Pos: geom.Point{X: 64, Y: 44}, Radius: 6},
			{ID: "tower2", Role: conngraph.RoleWatchtower, Pos: geom.Point{X: 64, Y: 84}, Radius: 6},
		},
		Connections: []mapdef.Connection{
			{From: "main1", To: "nat1", Kind: mapdef.ConnRamp, Width: 6},
			{From: "main2", To: "nat2", Kind: mapdef.ConnRamp, Width: 6},
			{From: "nat1", To: "center", Kind: mapdef.ConnRamp, Width: 8},
			{From: "nat2", To: "center", Kind: mapdef.ConnRamp, Width: 8},
			{From: "center", To: "gold1", Kind: mapdef.ConnDestructible, Width: 5},
			{From: "center", To: "gold2", Kind: mapdef.ConnDestructible, Width: 5},
		},
		Features: []mapdef.TerrainFeature{
			{Kind: mapdef.FeatureWater, Deep: true, Shape: &mapdef.ShapeSpec{
				Type: "circle", Center: geom.Point{X: 16, Y: 112}, Radius: 9}},
			{Kind: mapdef.FeatureWater, Deep: true, Shape: &mapdef.ShapeSpec{
				Type: "circle", Center: geom.Point{X: 112, Y: 16}, Radius: 9}},
			{Kind: mapdef.FeatureForest, Dense: true, Shape: &mapdef.ShapeSpec{
				Type: "circle", Center: geom.Point{X: 44, Y: 76}, Radius: 6}},
			{Kind: mapdef.FeatureForest, Dense: true, Shape: &mapdef.ShapeSpec{
				Type: "circle", Center: geom.Point{X: 84, Y: 52}, Radius: 6}},
		},
		VegetationDensity: 6,
		DecorationDensity: 3,
		Options: mapdef.Options{
			Seed:                 7,
			ValidateConnectivity: true,
			AutoFixConnectivity:  true,
		},
	}
}
