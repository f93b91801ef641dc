// This file is part of Nexel24.
//
// Nexel24 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nexel24 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nexel24.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/nexel24/nexel24/logger"
)

// Address is the default address of the server.
const Address = "localhost:12600"

const path = "/debug/statsview"

// Server is a running statsview server.
type Server struct {
	mgr *statsview.ViewManager
}

// Launch the server in the background. A message saying where the server can
// be found is written to the output.
func Launch(output io.Writer, address string) *Server {
	if address == "" {
		address = Address
	}

	viewer.SetConfiguration(viewer.WithAddr(address))
	srv := &Server{mgr: statsview.New()}

	go func() {
		err := srv.mgr.Start()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logf(logger.Allow, "statsview", "%v", err)
		}
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", address, path)

	return srv
}

// Stop the server.
func (srv *Server) Stop() {
	srv.mgr.Stop()
}
