package server_test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"payoutd/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func freePort() string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).NotTo(HaveOccurred())
	defer l.Close()
	return fmt.Sprint(l.Addr().(*net.TCPAddr).Port)
}

var _ = Describe("HTTPServer", func() {
	It("serves until shut down", func() {
		port := freePort()
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}), port, time.Minute)

		errChan := srv.Run()

		Eventually(func() (int, error) {
			resp, err := http.Get("http://127.0.0.1:" + port + "/")
			if err != nil {
				return 0, err
			}
			resp.Body.Close()
			return resp.StatusCode, nil
		}).Should(Equal(http.StatusNoContent))

		Expect(srv.Shutdown(context.Background())).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})

	It("uses the given write timeout", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), freePort(), 5*time.Minute)
		Expect(srv.WriteTimeout()).To(Equal(5 * time.Minute))
	})
})
