// Package prefab wraps encoded breadboards in the host's prefab document
// and hands the result to a storage sink.
//
// The host does not load a bare blueprint container. It expects a JSON
// prefab document whose BlockData field holds the base64 container and
// whose name fields carry the blueprint name. A [Packager] produces that
// document; [Template] is the default implementation and fills a
// fasttemplate text with {{tag}} placeholders.
//
// # Tags
//
// The default template understands these tags:
//   - name: the blueprint name
//   - block_data: the base64 container payload
//   - game_version, creator_name, creator_id, object_id: from [Meta]
//
// Values substituted into the template are JSON string-escaped.
//
// # Exporting
//
// [Exporter] runs the whole chain for one board:
//
//	exp := prefab.NewExporter(prefab.DefaultTemplate(prefab.DefaultMeta()), s, logger)
//	res, err := exp.Export(ctx, "AimAssist", board)
//	if err != nil {
//	    return err
//	}
//	fmt.Println("wrote", res.Location)
package prefab
