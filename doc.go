/*
go-annotate draws the output of a face, body, hand, object and gesture
detection pipeline onto a 2D drawing surface.  Boxes, labels, keypoints,
meshes and skeletons are rendered through the canvas.Context interface so
the same annotations can be painted with the pure Go raster backend, the gg
backend or onto an OpenCV Mat.

All renders a complete Result in a fixed order, optionally smoothing bodies,
hands and persons across frames through a buffer.Buffer.  The per entity
annotators live in the render package and can be called directly.

See cmd/annotate for a command line renderer and websocket stream server.
*/
package annotate
