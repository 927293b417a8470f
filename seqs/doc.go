/*
Package seqs holds the small set of iter.Seq helpers the containers share.

  - **Producers**: [FromNext] turns a pull-style Next method, such as the graph
    traversal iterators expose, into a range-over-func sequence.
  - **Transformations**: [Map], [Filter].
  - **Flow Control**: [Take], [Skip].
  - **Sinks**: [First], [Count].

Every sequence stops as soon as the consumer stops ranging, so a partially consumed
sequence can simply be dropped.
*/
package seqs
