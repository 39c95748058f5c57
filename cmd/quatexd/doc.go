// Command quatexd serves throwaway simulations and surveys over HTTP, with
// Prometheus metrics alongside. It keeps no state between requests.
package main
