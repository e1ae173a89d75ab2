package vnc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testServer wraps an httptest server for mocking controller API responses.
type testServer struct {
	server *httptest.Server
	mux    *http.ServeMux
}

func newTestServer() *testServer {
	mux := http.NewServeMux()
	return &testServer{
		server: httptest.NewServer(mux),
		mux:    mux,
	}
}

func (ts *testServer) close() {
	ts.server.Close()
}

// realClient returns a RealClient pointed at the test server with fast retry.
func (ts *testServer) realClient() *RealClient {
	return NewRealClient(ts.server.URL, "test-token",
		WithRetry(2, time.Millisecond))
}

func (ts *testServer) handleFunc(pattern string, handler http.HandlerFunc) {
	ts.mux.HandleFunc(pattern, handler)
}

func jsonResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func testIdentity() Identity {
	return Identity{Domain: "default-domain", Project: "tenant", Name: "tenant_ext"}
}

func TestIdentity_FQName(t *testing.T) {
	id := testIdentity()
	assert.Equal(t, []string{"default-domain", "tenant", "tenant_ext"}, id.FQName())
	assert.Equal(t, "default-domain:tenant:tenant_ext", id.String())
}

func TestRealClient_ReadNetwork(t *testing.T) {
	ts := newTestServer()
	defer ts.close()

	netUUID := uuid.NewString()
	ts.handleFunc("/virtual-network", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("X-Auth-Token"))
		assert.Equal(t, "default-domain:tenant:tenant_ext", r.URL.Query().Get("fq_name_str"))
		jsonResponse(w, http.StatusOK, virtualNetworkEnvelope{
			VirtualNetwork: &VirtualNetwork{
				UUID:            netUUID,
				FQName:          testIdentity().FQName(),
				RouteTargetList: &RouteTargetList{RouteTarget: []string{"target:65412:12"}},
			},
		})
	})

	vn, err := ts.realClient().ReadNetwork(context.Background(), testIdentity())
	require.NoError(t, err)
	assert.Equal(t, netUUID, vn.UUID)
	assert.Equal(t, []string{"target:65412:12"}, vn.RouteTargets())
}

func TestRealClient_ReadNetwork_NotFound(t *testing.T) {
	ts := newTestServer()
	defer ts.close()

	ts.handleFunc("/virtual-network", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no such network", http.StatusNotFound)
	})

	_, err := ts.realClient().ReadNetwork(context.Background(), testIdentity())
	assert.True(t, IsNotFound(err))
}

func TestRealClient_ReadNetwork_ServerError(t *testing.T) {
	ts := newTestServer()
	defer ts.close()

	ts.handleFunc("/virtual-network", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "permission denied", http.StatusForbidden)
	})

	_, err := ts.realClient().ReadNetwork(context.Background(), testIdentity())
	require.Error(t, err)
	assert.False(t, IsNotFound(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "permission denied")
}

func TestRealClient_CreateNetwork(t *testing.T) {
	ts := newTestServer()
	defer ts.close()

	var got virtualNetworkEnvelope
	ts.handleFunc("/virtual-networks", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		jsonResponse(w, http.StatusOK, map[string]any{})
	})

	vn := &VirtualNetwork{
		FQName: testIdentity().FQName(),
		IpamRefs: []IpamRef{{
			To: []string{"default-domain", "tenant", "tenant-ipam"},
			Attr: IpamRefAttr{IpamSubnets: []IpamSubnet{{
				Subnet:          SubnetPrefix{IPPrefix: "192.168.178.1", IPPrefixLen: 24},
				AllocationPools: []AllocationPool{{Start: "192.168.178.128", End: "192.168.178.250"}},
			}}},
		}},
	}
	require.NoError(t, ts.realClient().CreateNetwork(context.Background(), vn))

	require.NotNil(t, got.VirtualNetwork)
	require.Len(t, got.VirtualNetwork.IpamRefs, 1)
	assert.Equal(t, "192.168.178.1", got.VirtualNetwork.IpamRefs[0].Attr.IpamSubnets[0].Subnet.IPPrefix)
}

func TestRealClient_CreateIpam(t *testing.T) {
	ts := newTestServer()
	defer ts.close()

	ipamUUID := uuid.NewString()
	ts.handleFunc("/network-ipams", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var in networkIpamEnvelope
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.NetworkIpam.UUID = ipamUUID
		jsonResponse(w, http.StatusOK, in)
	})

	ipam, err := ts.realClient().CreateIpam(context.Background(), &NetworkIpam{
		FQName: []string{"default-domain", "tenant", "tenant-ipam"},
	})
	require.NoError(t, err)
	assert.Equal(t, ipamUUID, ipam.UUID)
}

func TestRealClient_DeleteNetwork(t *testing.T) {
	ts := newTestServer()
	defer ts.close()

	netUUID := uuid.NewString()
	deleted := false
	ts.handleFunc("/virtual-network/"+netUUID, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		deleted = true
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, ts.realClient().DeleteNetwork(context.Background(), netUUID))
	assert.True(t, deleted)
}

func TestRealClient_DeleteNetwork_AlreadyGone(t *testing.T) {
	ts := newTestServer()
	defer ts.close()

	netUUID := uuid.NewString()
	ts.handleFunc("/virtual-network/"+netUUID, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})

	// Idempotent: deleting a missing network succeeds.
	require.NoError(t, ts.realClient().DeleteNetwork(context.Background(), netUUID))
}

func TestRealClient_DeleteNetwork_RetriesLocked(t *testing.T) {
	ts := newTestServer()
	defer ts.close()

	netUUID := uuid.NewString()
	attempts := 0
	ts.handleFunc("/virtual-network/"+netUUID, func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts < 3 {
			http.Error(w, "resource locked", http.StatusConflict)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, ts.realClient().DeleteNetwork(context.Background(), netUUID))
	assert.Equal(t, 3, attempts)
}

func TestRealClient_DeleteNetwork_InvalidUUID(t *testing.T) {
	ts := newTestServer()
	defer ts.close()

	err := ts.realClient().DeleteNetwork(context.Background(), "not-a-uuid")
	assert.ErrorContains(t, err, "invalid network uuid")
}

func TestRealClient_UpdateNetwork(t *testing.T) {
	ts := newTestServer()
	defer ts.close()

	netUUID := uuid.NewString()
	var got virtualNetworkEnvelope
	ts.handleFunc("/virtual-network/"+netUUID, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	vn := &VirtualNetwork{
		UUID:            netUUID,
		FQName:          testIdentity().FQName(),
		RouteTargetList: &RouteTargetList{RouteTarget: []string{"target:65412:99"}},
	}
	require.NoError(t, ts.realClient().UpdateNetwork(context.Background(), vn))
	assert.Equal(t, []string{"target:65412:99"}, got.VirtualNetwork.RouteTargets())
}

func TestRealClient_Connect(t *testing.T) {
	ts := newTestServer()
	defer ts.close()

	ts.handleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	require.NoError(t, ts.realClient().Connect(context.Background()))
}

func TestRealClient_Connect_Unreachable(t *testing.T) {
	ts := newTestServer()
	ts.close() // shut down before connecting

	err := ts.realClient().Connect(context.Background())
	assert.ErrorContains(t, err, "cannot establish controller session")
}

func TestRealClient_BasicAuthFallback(t *testing.T) {
	ts := newTestServer()
	defer ts.close()

	ts.handleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "secret", pass)
		w.WriteHeader(http.StatusOK)
	})

	c := NewRealClient(ts.server.URL, "", WithBasicAuth("admin", "secret"))
	require.NoError(t, c.Connect(context.Background()))
}

func TestQualifyRouteTarget(t *testing.T) {
	assert.Equal(t, "target:65412:12", QualifyRouteTarget("65412:12"))
	assert.Equal(t, "", QualifyRouteTarget(""))
}

func TestUnqualifyRouteTarget(t *testing.T) {
	assert.Equal(t, "65412:12", UnqualifyRouteTarget("target:65412:12"))
	assert.Equal(t, "65412:12", UnqualifyRouteTarget("65412:12"))
}
