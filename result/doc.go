/*
Package result defines the detection results produced once per frame by an
external perception pipeline: faces, bodies, hands, objects, gestures and the
persons composed from them.

Results decode from the JSON emitted by the pipeline.  The render and buffer
packages treat a Result as read only; anything that needs to change one works
on a Clone.
*/
package result
