// Package diagram holds the editable object graph of the disk editor: points,
// construction lines and mirrors, linked by symmetric incidence.
//
// Objects live in arenas owned by a Graph and refer to each other by id.
// Every public Graph operation leaves incidence consistent and every stored
// point inside the closed unit disk.
package diagram
