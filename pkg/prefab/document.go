package prefab

import "strings"

// cellStructureCount is the length of the document's CSI array.
const cellStructureCount = 80

// defaultDocument is a single-block prefab holding one breadboard. The
// HashV1 field is not checked by the host for local prefabs.
var defaultDocument = `{"FileModelVersion":{"Major":1,"Minor":0},` +
	`"Name":"{{name}}","Version":0,"SavedTotalBlockCount":1,"SavedMaterialCost":10.0,"ContainedMaterialCost":0.0,` +
	`"ItemDictionary":{"227":"5ef97d26-1196-4b1a-ba1d-fd539c26b684","0":"75a78e48-0848-45ee-9df2-e2b328c1933d"},` +
	`"Blueprint":{"ContainedMaterialCost":0.0,` +
	`"CSI":[` + strings.TrimSuffix(strings.Repeat("-1.0,", cellStructureCount), ",") + `],` +
	`"COL":null,"SCs":[],"BLP":["0,0,0"],"BLR":[0],"BP1":null,"BP2":null,"BCI":[0],"BEI":null,` +
	`"BlockData":"{{block_data}}",` +
	`"VehicleData":"sct0AAAAAAAA","designChanged":false,"blueprintVersion":0,"blueprintName":"{{name}}",` +
	`"SerialisedInfo":{"JsonDictionary":{},"IsEmpty":true},"Name":null,"ItemNumber":0,` +
	`"LocalPosition":"0,0,0","LocalRotation":"0,0,0,0","ForceId":0,"TotalBlockCount":1,` +
	`"MaxCords":"1,1,1","MinCords":"0,0,0","BlockIds":[227],"BlockState":null,"AliveCount":1,` +
	`"BlockStringData":null,"BlockStringDataIds":null,"GameVersion":"{{game_version}}",` +
	`"PersistentSubObjectIndex":-1,"PersistentBlockIndex":-1,` +
	`"AuthorDetails":{"Valid":true,"ForeignBlocks":0,"CreatorId":"{{creator_id}}","ObjectId":"{{object_id}}",` +
	`"CreatorReadableName":"{{creator_name}}","HashV1":"6831413c85b3e408740dc00f5580382c"},"BlockCount":1}}`
