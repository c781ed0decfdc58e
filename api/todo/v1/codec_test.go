package todov1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestJSONCodec_Registered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, CodecName, codec.Name())
}

func TestJSONCodec_WireShape(t *testing.T) {
	codec := jsonCodec{}

	data, err := codec.Marshal(&MoveItemRequest{ListId: "l1", ItemId: "i1", NewIndex: -1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"list_id":"l1","item_id":"i1","new_index":-1}`, string(data))

	var req ReorderItemsRequest
	require.NoError(t, codec.Unmarshal([]byte(`{"list_id":"l1","order":{"a":1,"b":0}}`), &req))
	assert.Equal(t, "l1", req.ListId)
	assert.Equal(t, map[string]int32{"a": 1, "b": 0}, req.Order)
}

func TestJSONCodec_RejectsMalformed(t *testing.T) {
	var req MoveItemRequest
	assert.Error(t, jsonCodec{}.Unmarshal([]byte(`{"new_index":"top"}`), &req))
}
