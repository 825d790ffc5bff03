/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httpx

import (
	"net/http"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/status"
	"dirpx.dev/status/apis"
)

// errorInfoDomain mirrors the domain used on the gRPC side so that HTTP and
// gRPC consumers see one encoding.
const errorInfoDomain = "dirpx.dev/status"

// Writer is a thin adapter that knows how to turn a status into an HTTP
// response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write serializes a non-OK status as a google.rpc.Status JSON body and
// writes it to the response writer. The HTTP status is resolved via the
// Mapper; the body's code field carries the resolved gRPC code, and an
// ErrorInfo detail preserves the exact category and POSIX code.
//
// Writing an OK status is a no-op: success bodies belong to the handler, not
// to the error writer.
func (w Writer) Write(rw http.ResponseWriter, st status.Status) {
	if st.IsOK() {
		return
	}

	tr := w.Mapper.Transport(st.Code())

	gs := gstatus.New(tr.GRPC, st.Message())
	info := &errdetails.ErrorInfo{
		Reason:   strings.ToUpper(st.Code().Ident()),
		Domain:   errorInfoDomain,
		Metadata: map[string]string{},
	}
	if pc := st.PosixCode(); pc != status.NoPosixCode {
		info.Metadata["posix_code"] = strconv.Itoa(int(pc))
	}
	if with, err := gs.WithDetails(info); err == nil {
		gs = with
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(tr.HTTP)

	// IMPORTANT: google.rpc.Status must go through protojson to serialize
	// the Any-typed details and json_name fields correctly.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(gs.Proto())
	_, _ = rw.Write(b)
}
