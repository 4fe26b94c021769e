/*Package bolt implements a session layer for the Neo4j Bolt protocol.

The entry point is NewDriver, which parses and validates a bolt://
connection URL without touching the network. Driver.Session dials a
fresh connection, performs the Bolt handshake and INIT exchange, and
returns a Session that owns that connection exclusively until closed.

Session.Run pipelines the two requests every statement needs: the
execution request (RUN) and the result stream request (PULL_ALL) are
queued and flushed together, then their responses are consumed strictly
in order. Rows come back as read-only Record values whose fields can be
looked up by position or by name. Multiple statements can be grouped
atomically with Session.BeginTransaction, which brackets them between
BEGIN and a final COMMIT or ROLLBACK.

Every Run call leaves a BenchTest sample on the session, six timestamps
reduced to an overall/network/wait latency triple, so callers can see
where round-trip time goes. Session.LatencyMetrics summarizes the
accumulated samples.

Values are returned with the smallest wire representation widened to
the usual Go types: all integers surface as int64, maps as
map[string]interface{}, lists as []interface{}. Nodes, relationships
and paths surface as the types in the structures/graph package; the
protocol cannot express uint64 values above the int64 maximum.

Sessions, and any transactions within, are not thread safe. Use the
driver to create a session per goroutine instead of sharing one.
*/
package bolt
