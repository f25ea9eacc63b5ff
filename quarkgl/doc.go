// Package quarkgl is a small software 3D renderer.
//
// It covers what a rotating-mesh demo needs and nothing more: a scene root
// holding meshes, a perspective camera, box geometry, flat materials and a
// renderer that rasterizes the scene into an RGBA Surface.
//
// Pipeline (fixed):
//
//	Scene → Model → View → Projection → NDC → Rasterization → Surface.
//
// The renderer is single-threaded and reuses its surface and depth buffer
// between frames. Callers own scheduling; nothing in this package blocks.
package quarkgl
